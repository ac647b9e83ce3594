//go:build wireinject
// +build wireinject

package wire

import (
	"socialfeed/internal/config"
	"socialfeed/internal/feed"
	"socialfeed/internal/moderation"
	"socialfeed/internal/notif"
	"socialfeed/internal/user"

	"github.com/google/wire"
)

func InitializeApplication(cfg *config.Config) (*Application, func(), error) {
	wire.Build(
		ProvideDatabaseConnection,
		ProvideMongoClient,
		ProvideAlertRepository,
		ProvideEmitter,
		ProvideLexicon,
		moderation.NewEngine,
		ProvideCrisisService,
		wire.Bind(new(moderation.CrisisAlerter), new(*notif.CrisisService)),
		moderation.NewGRPCServer,

		user.NewFriendRepository,
		user.NewProfileRepository,
		user.NewGraph,
		user.NewSocialService,
		user.NewHandler,

		feed.NewFeedRepository,
		ProvideFeedService,
		wire.Bind(new(feed.FeedUsecase), new(*feed.FeedService)),
		feed.NewFeedHandler,

		notif.NewAlertHandler,
		ProvideTokenManager,
		ProvideRateLimits,
		wire.Struct(new(Application), "*"),
	)
	return &Application{}, nil, nil
}
