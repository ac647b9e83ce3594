package wire

import (
	"context"
	"log"
	"time"

	"socialfeed/internal/common"
	"socialfeed/internal/config"
	"socialfeed/internal/dbmongo"
	"socialfeed/internal/dbmysql"
	"socialfeed/internal/events"
	"socialfeed/internal/feed"
	"socialfeed/internal/moderation"
	"socialfeed/internal/notif"
	"socialfeed/internal/user"
	"socialfeed/internal/visibility"

	"gorm.io/gorm"
)

type Application struct {
	Config         *config.Config
	DB             *gorm.DB
	TokenManager   *common.TokenManager
	RateLimits     *common.RateLimits
	Engine         *moderation.Engine
	FeedService    *feed.FeedService
	FeedHandler    *feed.FeedHandler
	SocialHandler  *user.Handler
	AlertHandler   *notif.AlertHandler
	CrisisService  *notif.CrisisService
	ModerationGRPC *moderation.GRPCServer
}

func ProvideDatabaseConnection(cfg *config.Config) (*gorm.DB, func(), error) {
	db, err := dbmysql.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return db, cleanup, nil
}

// ProvideMongoClient returns a nil client when the alert log is disabled.
func ProvideMongoClient(cfg *config.Config) (*dbmongo.MongoClient, func(), error) {
	if !cfg.MongoDB.Enabled {
		log.Println("MongoDB disabled, crisis alerts will not be stored")
		return nil, func() {}, nil
	}
	mc, err := dbmongo.NewMongoConnection(cfg)
	if err != nil {
		return nil, nil, err
	}
	log.Println("✅ Connected to MongoDB successfully")

	cleanup := func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mc.Close(ctx); err != nil {
			log.Printf("Failed to disconnect MongoDB: %v", err)
		}
	}
	return mc, cleanup, nil
}

// ProvideAlertRepository must hand back an untyped nil when there is no client, so the
// crisis service can tell a missing store apart from a broken one.
func ProvideAlertRepository(cfg *config.Config, mc *dbmongo.MongoClient) common.AlertRepository {
	if mc == nil {
		return nil
	}
	store := dbmongo.NewAlertStore(mc, cfg.MongoDB.Collection)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := store.EnsureIndexes(ctx); err != nil {
		log.Printf("⚠️ Failed to create alert indexes: %v", err)
	}
	return store
}

func ProvideEmitter(cfg *config.Config) (events.Emitter, func()) {
	emitter := events.NewEmitter(cfg)
	cleanup := func() {
		if err := emitter.Close(); err != nil {
			log.Printf("Failed to close event emitter: %v", err)
		}
	}
	return emitter, cleanup
}

func ProvideLexicon(cfg *config.Config) (*moderation.Lexicon, error) {
	if cfg.Moderation.LexiconPath == "" {
		return moderation.DefaultLexicon(), nil
	}
	log.Printf("Loading moderation lexicon from %s", cfg.Moderation.LexiconPath)
	return moderation.LoadLexicon(cfg.Moderation.LexiconPath)
}

func ProvideCrisisService(cfg *config.Config, store common.AlertRepository, emitter events.Emitter) (*notif.CrisisService, func()) {
	svc := notif.NewCrisisService(cfg, store, emitter)
	return svc, svc.Shutdown
}

func ProvideFeedService(cfg *config.Config, store *feed.FeedRepository, engine *moderation.Engine, graph *user.Graph, crisis *notif.CrisisService, emitter events.Emitter) *feed.FeedService {
	return feed.NewFeedService(store, engine, visibility.NewResolver(graph), crisis, emitter, feed.ServiceOptions{
		ModerateEdits: cfg.Moderation.ModerateEdits,
		PublicURL:     cfg.Server.PublicURL,
	})
}

func ProvideTokenManager(cfg *config.Config) *common.TokenManager {
	return common.NewTokenManager(cfg.Auth.Secret, cfg.Auth.TTL)
}

func ProvideRateLimits(cfg *config.Config) *common.RateLimits {
	rl := cfg.RateLimit
	return common.NewRateLimits(rl.Publications, rl.Comments, rl.Likes, rl.Social, rl.Search, rl.Burst)
}
