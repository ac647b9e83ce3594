package feed

import (
	"context"
	"errors"
	"log"
	"time"
	"unicode/utf8"

	"socialfeed/internal/commenttree"
	"socialfeed/internal/common"
	"socialfeed/internal/dbmysql"
	"socialfeed/internal/like"
	"socialfeed/internal/moderation"
	"socialfeed/internal/publication"
	"socialfeed/internal/visibility"
)

// DefaultMaxSaveAttempts bounds how often a write is retried after losing a version race.
const DefaultMaxSaveAttempts = 3

const sweepBatchSize = 100

// Moderator is the slice of *moderation.Engine the feed depends on.
type Moderator interface {
	Verify(text string) moderation.Verdict
	VerifyCommunityMetadata(meta moderation.CommunityMetadata) moderation.CommunityVerdict
	AllowedCategories() []string
	ExtendProfanity(words ...string) int
}

// EventEmitter publishes domain events for downstream consumers.
type EventEmitter interface {
	Emit(ctx context.Context, eventType string, payload map[string]interface{}) error
}

//go:generate mockgen -destination=mock_feed_usecase_test.go -package=feed socialfeed/internal/feed FeedUsecase

type FeedUsecase interface {
	CreatePublication(ctx context.Context, in CreatePublicationInput) (*PublicationResult, error)
	UpdatePublication(ctx context.Context, pubID, userID, text string) (*PublicationResult, error)
	DeletePublication(ctx context.Context, pubID, userID string) error
	GetPublication(ctx context.Context, pubID, viewerID string) (*PublicationView, error)
	GetFeed(ctx context.Context, viewerID string, q FeedQuery) (*FeedPage, error)
	GetUserPublications(ctx context.Context, viewerID, authorID string, page common.Page) (*FeedPage, error)

	LikePublication(ctx context.Context, pubID, userID string) (*LikeResult, error)
	UnlikePublication(ctx context.Context, pubID, userID string) (*LikeResult, error)

	AddComment(ctx context.Context, in AddCommentInput) (*AddCommentResult, error)
	EditComment(ctx context.Context, pubID, commentID, userID, text string) (*CommentResult, error)
	DeleteComment(ctx context.Context, pubID, commentID, userID string) (*DeleteCommentResult, error)
	GetComments(ctx context.Context, pubID, viewerID string, hierarchical bool) (*CommentsResult, error)
	LikeComment(ctx context.Context, pubID, commentID, userID string) (*LikeResult, error)
	UnlikeComment(ctx context.Context, pubID, commentID, userID string) (*LikeResult, error)

	VerifyCommunity(ctx context.Context, meta moderation.CommunityMetadata, authorID string) moderation.CommunityVerdict
	AllowedCategories() []string
	ExtendLexicon(ctx context.Context, words []string) (int, error)
	SweepModeration(ctx context.Context) (*SweepReport, error)
}

type ServiceOptions struct {
	ModerateEdits   bool
	MaxSaveAttempts int
	// PublicURL turns bare uploaded file names into absolute media URLs.
	PublicURL string
}

type FeedService struct {
	store     Store
	moderator Moderator
	resolver  *visibility.Resolver
	alerts    moderation.CrisisAlerter
	emitter   EventEmitter
	opts      ServiceOptions
}

var _ FeedUsecase = (*FeedService)(nil)

// NewFeedService wires the feed use cases. alerts and emitter may be nil.
func NewFeedService(store Store, moderator Moderator, resolver *visibility.Resolver, alerts moderation.CrisisAlerter, emitter EventEmitter, opts ServiceOptions) *FeedService {
	if opts.MaxSaveAttempts < 1 {
		opts.MaxSaveAttempts = DefaultMaxSaveAttempts
	}
	return &FeedService{
		store:     store,
		moderator: moderator,
		resolver:  resolver,
		alerts:    alerts,
		emitter:   emitter,
		opts:      opts,
	}
}

// errUnchanged lets a mutation skip the save when it found nothing to do.
var errUnchanged = errors.New("publication unchanged")

// mutate loads the publication inside a transaction, applies fn and saves the result.
// A lost version race reloads and reapplies fn, so fn must only depend on its arguments.
func (s *FeedService) mutate(ctx context.Context, pubID string, fn func(tx Store, p *publication.Publication) error) (*publication.Publication, error) {
	var result *publication.Publication
	for attempt := 1; ; attempt++ {
		err := s.store.Transaction(ctx, func(tx Store) error {
			p, err := tx.FindPublicationByID(ctx, pubID)
			if err != nil {
				return err
			}
			if !p.IsActive() {
				return common.NotFound("publication %s not found", pubID)
			}
			if err := fn(tx, p); err != nil {
				if errors.Is(err, errUnchanged) {
					result = p
					return nil
				}
				return err
			}
			if err := tx.SavePublication(ctx, p); err != nil {
				return err
			}
			result = p
			return nil
		})
		if err == nil {
			return result, nil
		}
		if !errors.Is(err, ErrStaleVersion) || attempt >= s.opts.MaxSaveAttempts {
			return nil, err
		}
		log.Printf("Publication %s changed concurrently, retrying (attempt %d)", pubID, attempt+1)
	}
}

// ensureVisible hides publications the viewer may not see behind NotFound.
func (s *FeedService) ensureVisible(ctx context.Context, viewerID string, p *publication.Publication) error {
	ok, err := s.resolver.CanView(ctx, viewerID, p)
	if err != nil {
		return common.Unavailable(err, "failed to resolve visibility")
	}
	if !ok {
		return common.NotFound("publication %s not found", p.ID())
	}
	return nil
}

func (s *FeedService) raiseCrisis(contextID string, kind common.ContentKind, authorID string) {
	if s.alerts == nil {
		log.Printf("⚠️ Crisis content in %s %s by %s (no alerter configured)", kind, contextID, authorID)
		return
	}
	s.alerts.RaiseCrisisAlert(contextID, kind, authorID)
}

func (s *FeedService) emit(ctx context.Context, eventType string, payload map[string]interface{}) {
	if s.emitter == nil {
		return
	}
	if err := s.emitter.Emit(ctx, eventType, payload); err != nil {
		log.Printf("Failed to emit %s: %v", eventType, err)
	}
}

// --------- PUBLICATIONS ---------

func (s *FeedService) CreatePublication(ctx context.Context, in CreatePublicationInput) (*PublicationResult, error) {
	media := make([]publication.MediaItem, len(in.MediaItems))
	for i, m := range in.MediaItems {
		if m.Type == "" {
			m.Type = common.DetectFileTypeByName(m.URL)
		}
		if s.opts.PublicURL != "" {
			m.URL = dbmysql.MediaURL(s.opts.PublicURL, m.URL)
		}
		media[i] = m
	}

	p, err := publication.New(in.AuthorID, in.Text, in.Type, in.Visibility, media)
	if err != nil {
		return nil, err
	}

	verdict := s.moderator.Verify(p.Text())
	if !verdict.Safe {
		return nil, common.ModerationRejected("publication", verdict.Reason)
	}

	if err := s.store.SavePublication(ctx, p); err != nil {
		return nil, err
	}
	if verdict.Crisis {
		s.raiseCrisis(p.ID(), common.ContentPublication, p.AuthorID())
	}

	s.emit(ctx, "publication.created", map[string]interface{}{
		"publicationId": p.ID(),
		"authorId":      p.AuthorID(),
		"visibility":    string(p.Visibility()),
		"type":          string(p.Type()),
	})

	view := s.toView(p, nil, false)
	return &PublicationResult{Success: true, Publication: view, Crisis: verdict.Crisis}, nil
}

func (s *FeedService) UpdatePublication(ctx context.Context, pubID, userID, text string) (*PublicationResult, error) {
	if err := common.RequireID("publicationId", pubID); err != nil {
		return nil, err
	}
	if err := common.RequireID("userId", userID); err != nil {
		return nil, err
	}

	verdict := moderation.Verdict{Safe: true}
	if s.opts.ModerateEdits {
		verdict = s.moderator.Verify(text)
		if !verdict.Safe {
			return nil, common.ModerationRejected("publication", verdict.Reason)
		}
	}

	p, err := s.mutate(ctx, pubID, func(_ Store, p *publication.Publication) error {
		return p.UpdateText(userID, text)
	})
	if err != nil {
		return nil, err
	}
	if verdict.Crisis {
		s.raiseCrisis(p.ID(), common.ContentPublication, userID)
	}

	s.emit(ctx, "publication.updated", map[string]interface{}{
		"publicationId": p.ID(),
		"authorId":      userID,
	})

	view := s.toView(p, nil, false)
	return &PublicationResult{Success: true, Publication: view, Crisis: verdict.Crisis}, nil
}

func (s *FeedService) DeletePublication(ctx context.Context, pubID, userID string) error {
	if err := common.RequireID("publicationId", pubID); err != nil {
		return err
	}
	if err := common.RequireID("userId", userID); err != nil {
		return err
	}

	if _, err := s.mutate(ctx, pubID, func(_ Store, p *publication.Publication) error {
		return p.Deactivate(userID)
	}); err != nil {
		return err
	}

	s.emit(ctx, "publication.deleted", map[string]interface{}{
		"publicationId": pubID,
		"deletedBy":     userID,
	})
	return nil
}

func (s *FeedService) GetPublication(ctx context.Context, pubID, viewerID string) (*PublicationView, error) {
	if err := common.RequireID("publicationId", pubID); err != nil {
		return nil, err
	}

	p, err := s.store.FindPublicationByID(ctx, pubID)
	if err != nil {
		return nil, err
	}
	if !p.IsActive() {
		return nil, common.NotFound("publication %s not found", pubID)
	}
	if err := s.ensureVisible(ctx, viewerID, p); err != nil {
		return nil, err
	}

	liked, err := s.store.FindLikedTargets(ctx, viewerID, like.KindPublication, []string{p.ID()})
	if err != nil {
		return nil, err
	}
	authors, err := s.store.FindAuthors(ctx, []string{p.AuthorID()})
	if err != nil {
		return nil, err
	}

	view := s.toView(p, authors, liked[p.ID()])
	return &view, nil
}

// GetFeed lists what the viewer may see, newest first. An empty viewerID is anonymous.
func (s *FeedService) GetFeed(ctx context.Context, viewerID string, q FeedQuery) (*FeedPage, error) {
	q.Page = common.NewPage(q.Page.Page, q.Page.Limit)
	scope, err := s.resolver.ScopeFor(ctx, viewerID)
	if err != nil {
		return nil, common.Unavailable(err, "failed to resolve visibility")
	}

	pubs, total, err := s.store.ListPublications(ctx, PublicationQuery{
		Scope:    scope,
		AuthorID: q.AuthorID,
		Page:     q.Page,
	})
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(pubs))
	authorIDs := make([]string, 0, len(pubs))
	seen := make(map[string]bool, len(pubs))
	for i, p := range pubs {
		ids[i] = p.ID()
		if !seen[p.AuthorID()] {
			seen[p.AuthorID()] = true
			authorIDs = append(authorIDs, p.AuthorID())
		}
	}

	liked, err := s.store.FindLikedTargets(ctx, viewerID, like.KindPublication, ids)
	if err != nil {
		return nil, err
	}
	authors, err := s.store.FindAuthors(ctx, authorIDs)
	if err != nil {
		return nil, err
	}

	views := make([]PublicationView, len(pubs))
	for i, p := range pubs {
		views[i] = s.toView(p, authors, liked[p.ID()])
	}

	return &FeedPage{
		Publications: views,
		Total:        total,
		Page:         q.Page.Page,
		Limit:        q.Page.Limit,
		Pages:        q.Page.Pages(total),
		HasMore:      q.Page.HasMore(total),
	}, nil
}

func (s *FeedService) GetUserPublications(ctx context.Context, viewerID, authorID string, page common.Page) (*FeedPage, error) {
	if err := common.RequireID("userId", authorID); err != nil {
		return nil, err
	}
	return s.GetFeed(ctx, viewerID, FeedQuery{AuthorID: authorID, Page: page})
}

// --------- PUBLICATION LIKES ---------

func (s *FeedService) LikePublication(ctx context.Context, pubID, userID string) (*LikeResult, error) {
	l, err := like.New(userID, like.PublicationTarget(pubID))
	if err != nil {
		return nil, err
	}

	p, err := s.mutate(ctx, pubID, func(tx Store, p *publication.Publication) error {
		if err := s.ensureVisible(ctx, userID, p); err != nil {
			return err
		}
		if err := tx.RecordLike(ctx, l); err != nil {
			return err
		}
		p.IncrementLikes()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, "publication.liked", map[string]interface{}{
		"publicationId": pubID,
		"userId":        userID,
		"authorId":      p.AuthorID(),
	})
	return &LikeResult{Success: true, TargetID: pubID, Liked: true, LikesCount: p.LikesCount()}, nil
}

func (s *FeedService) UnlikePublication(ctx context.Context, pubID, userID string) (*LikeResult, error) {
	target := like.PublicationTarget(pubID)
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if err := common.RequireID("userId", userID); err != nil {
		return nil, err
	}

	p, err := s.mutate(ctx, pubID, func(tx Store, p *publication.Publication) error {
		removed, err := tx.RemoveLike(ctx, userID, target)
		if err != nil {
			return err
		}
		if !removed {
			return common.NotFound("%s is not liked by %s", target, userID)
		}
		p.DecrementLikes()
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, "publication.unliked", map[string]interface{}{
		"publicationId": pubID,
		"userId":        userID,
	})
	return &LikeResult{Success: true, TargetID: pubID, Liked: false, LikesCount: p.LikesCount()}, nil
}

// --------- COMMENTS ---------

func (s *FeedService) AddComment(ctx context.Context, in AddCommentInput) (*AddCommentResult, error) {
	if err := common.RequireID("publicationId", in.PublicationID); err != nil {
		return nil, err
	}
	if err := common.RequireID("authorId", in.AuthorID); err != nil {
		return nil, err
	}
	if _, err := common.RequireText("text", in.Text); err != nil {
		return nil, err
	}

	verdict := s.moderator.Verify(in.Text)
	if !verdict.Safe {
		return nil, common.ModerationRejected("comment", verdict.Reason)
	}

	var ev publication.CommentAddedEvent
	p, err := s.mutate(ctx, in.PublicationID, func(_ Store, p *publication.Publication) error {
		if err := s.ensureVisible(ctx, in.AuthorID, p); err != nil {
			return err
		}
		var err error
		ev, err = p.AddComment(in.AuthorID, in.Text, in.ParentCommentID)
		return err
	})
	if err != nil {
		return nil, err
	}

	if verdict.Crisis {
		s.raiseCrisis(ev.CommentID, common.ContentComment, in.AuthorID)
	}

	payload := map[string]interface{}{
		"commentId":     ev.CommentID,
		"publicationId": ev.PublicationID,
		"authorId":      ev.AuthorID,
		"timestamp":     ev.Timestamp.Format(time.RFC3339),
	}
	if ev.ParentCommentID != nil {
		payload["parentCommentId"] = *ev.ParentCommentID
	}
	s.emit(ctx, "comment.added", payload)

	result := &AddCommentResult{
		Success:       true,
		CommentsCount: p.CommentsCount(),
		Crisis:        verdict.Crisis,
		Event:         ev,
	}
	if c := p.GetCommentByID(ev.CommentID); c != nil {
		result.Comment = *c
	}
	return result, nil
}

func (s *FeedService) EditComment(ctx context.Context, pubID, commentID, userID, text string) (*CommentResult, error) {
	if err := common.RequireID("publicationId", pubID); err != nil {
		return nil, err
	}
	if err := common.RequireID("commentId", commentID); err != nil {
		return nil, err
	}

	verdict := moderation.Verdict{Safe: true}
	if s.opts.ModerateEdits {
		verdict = s.moderator.Verify(text)
		if !verdict.Safe {
			return nil, common.ModerationRejected("comment", verdict.Reason)
		}
	}

	p, err := s.mutate(ctx, pubID, func(_ Store, p *publication.Publication) error {
		return p.EditComment(commentID, userID, text)
	})
	if err != nil {
		return nil, err
	}
	if verdict.Crisis {
		s.raiseCrisis(commentID, common.ContentComment, userID)
	}

	s.emit(ctx, "comment.edited", map[string]interface{}{
		"commentId":     commentID,
		"publicationId": pubID,
		"authorId":      userID,
	})

	result := &CommentResult{Success: true, Crisis: verdict.Crisis}
	if c := p.GetCommentByID(commentID); c != nil {
		result.Comment = *c
	}
	return result, nil
}

func (s *FeedService) DeleteComment(ctx context.Context, pubID, commentID, userID string) (*DeleteCommentResult, error) {
	if err := common.RequireID("publicationId", pubID); err != nil {
		return nil, err
	}
	if err := common.RequireID("commentId", commentID); err != nil {
		return nil, err
	}

	var ev publication.CommentDeletedEvent
	p, err := s.mutate(ctx, pubID, func(_ Store, p *publication.Publication) error {
		var err error
		ev, err = p.DeleteComment(commentID, userID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, "comment.deleted", map[string]interface{}{
		"commentId":     ev.CommentID,
		"publicationId": ev.PublicationID,
		"deletedBy":     ev.DeletedBy,
	})
	return &DeleteCommentResult{Success: true, CommentsCount: p.CommentsCount(), Event: ev}, nil
}

// GetComments lists a publication's comments either flat (active only) or as a reply
// forest where deleted comments that still anchor replies become placeholders.
func (s *FeedService) GetComments(ctx context.Context, pubID, viewerID string, hierarchical bool) (*CommentsResult, error) {
	if err := common.RequireID("publicationId", pubID); err != nil {
		return nil, err
	}

	p, err := s.store.FindPublicationByID(ctx, pubID)
	if err != nil {
		return nil, err
	}
	if !p.IsActive() {
		return nil, common.NotFound("publication %s not found", pubID)
	}
	if err := s.ensureVisible(ctx, viewerID, p); err != nil {
		return nil, err
	}

	active := p.ActiveComments()
	ids := make([]string, len(active))
	for i, c := range active {
		ids[i] = c.ID
	}
	liked, err := s.store.FindLikedTargets(ctx, viewerID, like.KindComment, ids)
	if err != nil {
		return nil, err
	}

	result := &CommentsResult{
		Success:       true,
		PublicationID: p.ID(),
		Hierarchical:  hierarchical,
		TotalComments: len(active),
		CommentsCount: p.CommentsCount(),
	}
	if !hierarchical {
		result.Comments = make([]CommentView, len(active))
		for i, c := range active {
			result.Comments[i] = CommentView{Comment: c, IsLikedByViewer: liked[c.ID]}
		}
		return result, nil
	}

	forest := commenttree.PruneInactive(commenttree.Organize(p.Comments()))
	result.Tree = toCommentNodes(forest, liked)
	return result, nil
}

func toCommentNodes(forest []*commenttree.Node, liked map[string]bool) []*CommentNode {
	out := make([]*CommentNode, len(forest))
	for i, n := range forest {
		out[i] = &CommentNode{
			CommentView: CommentView{Comment: n.Comment, IsLikedByViewer: !n.Placeholder && liked[n.ID]},
			Placeholder: n.Placeholder,
			Replies:     toCommentNodes(n.Replies, liked),
		}
	}
	return out
}

// --------- COMMENT LIKES ---------

func (s *FeedService) LikeComment(ctx context.Context, pubID, commentID, userID string) (*LikeResult, error) {
	if err := common.RequireID("publicationId", pubID); err != nil {
		return nil, err
	}
	l, err := like.New(userID, like.CommentTarget(commentID))
	if err != nil {
		return nil, err
	}

	var count int
	_, err = s.mutate(ctx, pubID, func(tx Store, p *publication.Publication) error {
		if err := s.ensureVisible(ctx, userID, p); err != nil {
			return err
		}
		c := p.GetCommentByID(commentID)
		if c == nil {
			return common.NotFound("comment %s not found", commentID)
		}
		if err := tx.RecordLike(ctx, l); err != nil {
			return err
		}
		c.IncrementLikes()
		count = c.LikesCount
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, "comment.liked", map[string]interface{}{
		"commentId":     commentID,
		"publicationId": pubID,
		"userId":        userID,
	})
	return &LikeResult{Success: true, TargetID: commentID, Liked: true, LikesCount: count}, nil
}

func (s *FeedService) UnlikeComment(ctx context.Context, pubID, commentID, userID string) (*LikeResult, error) {
	if err := common.RequireID("publicationId", pubID); err != nil {
		return nil, err
	}
	target := like.CommentTarget(commentID)
	if err := target.Validate(); err != nil {
		return nil, err
	}
	if err := common.RequireID("userId", userID); err != nil {
		return nil, err
	}

	var count int
	_, err := s.mutate(ctx, pubID, func(tx Store, p *publication.Publication) error {
		c := p.GetCommentByID(commentID)
		if c == nil {
			return common.NotFound("comment %s not found", commentID)
		}
		removed, err := tx.RemoveLike(ctx, userID, target)
		if err != nil {
			return err
		}
		if !removed {
			return common.NotFound("%s is not liked by %s", target, userID)
		}
		c.DecrementLikes()
		count = c.LikesCount
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.emit(ctx, "comment.unliked", map[string]interface{}{
		"commentId":     commentID,
		"publicationId": pubID,
		"userId":        userID,
	})
	return &LikeResult{Success: true, TargetID: commentID, Liked: false, LikesCount: count}, nil
}

// --------- MODERATION ---------

func (s *FeedService) VerifyCommunity(ctx context.Context, meta moderation.CommunityMetadata, authorID string) moderation.CommunityVerdict {
	verdict := s.moderator.VerifyCommunityMetadata(meta)
	if verdict.Valid && verdict.Crisis {
		s.raiseCrisis(meta.Name, common.ContentCommunity, authorID)
	}
	return verdict
}

func (s *FeedService) AllowedCategories() []string {
	return s.moderator.AllowedCategories()
}

// ExtendLexicon adds profanity terms and reports how many were new.
func (s *FeedService) ExtendLexicon(ctx context.Context, words []string) (int, error) {
	if len(words) == 0 {
		return 0, common.Validation("words are required")
	}
	added := s.moderator.ExtendProfanity(words...)
	log.Printf("🛡️ Profanity lexicon extended with %d new term(s)", added)
	return added, nil
}

// SweepModeration re-runs moderation over every active publication and its active
// comments. Unsafe publications are taken down and unsafe comments removed through the
// aggregate, so counters stay consistent. Crisis content is counted but not re-alerted.
func (s *FeedService) SweepModeration(ctx context.Context) (*SweepReport, error) {
	report := &SweepReport{StartedAt: time.Now().UTC()}

	after := ""
	for {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		ids, err := s.store.ListActivePublicationIDs(ctx, after, sweepBatchSize)
		if err != nil {
			return report, err
		}
		if len(ids) == 0 {
			break
		}
		for _, id := range ids {
			if err := s.sweepPublication(ctx, id, report); err != nil {
				if errors.Is(err, common.ErrNotFound) {
					continue
				}
				return report, err
			}
		}
		after = ids[len(ids)-1]
	}

	report.FinishedAt = time.Now().UTC()
	log.Printf("🧹 Moderation sweep done: %d publications, %d comments scanned, %d flagged, %d crisis",
		report.PublicationsScanned, report.CommentsScanned, len(report.Flagged), report.CrisisDetected)
	return report, nil
}

func (s *FeedService) sweepPublication(ctx context.Context, pubID string, report *SweepReport) error {
	var (
		flagged  []FlaggedItem
		crisis   int
		comments int
	)
	_, err := s.mutate(ctx, pubID, func(_ Store, p *publication.Publication) error {
		flagged, crisis, comments = nil, 0, 0

		verdict := s.moderator.Verify(p.Text())
		if verdict.Crisis {
			crisis++
		}
		if !verdict.Safe {
			flagged = append(flagged, FlaggedItem{
				ID:      p.ID(),
				Kind:    common.ContentPublication,
				Excerpt: excerpt(p.Text()),
				Reason:  verdict.Reason,
			})
			p.Takedown()
			return nil
		}

		for _, c := range p.ActiveComments() {
			comments++
			v := s.moderator.Verify(c.Text)
			if v.Crisis {
				crisis++
			}
			if v.Safe {
				continue
			}
			flagged = append(flagged, FlaggedItem{
				ID:      c.ID,
				Kind:    common.ContentComment,
				Excerpt: excerpt(c.Text),
				Reason:  v.Reason,
			})
			if err := p.RemoveComment(c.ID); err != nil {
				return err
			}
		}
		if len(flagged) == 0 {
			return errUnchanged
		}
		return nil
	})
	if err != nil {
		return err
	}

	report.PublicationsScanned++
	report.CommentsScanned += comments
	report.CrisisDetected += crisis
	for _, f := range flagged {
		if f.Kind == common.ContentPublication {
			report.PublicationsRemoved++
		} else {
			report.CommentsRemoved++
		}
		log.Printf("🚫 Sweep removed %s %s: %s", f.Kind, f.ID, f.Reason)
	}
	report.Flagged = append(report.Flagged, flagged...)
	return nil
}

const excerptLength = 50

func excerpt(text string) string {
	if utf8.RuneCountInString(text) <= excerptLength {
		return text
	}
	return string([]rune(text)[:excerptLength]) + "..."
}

// --------- VIEWS ---------

func (s *FeedService) toView(p *publication.Publication, authors map[string]AuthorSummary, liked bool) PublicationView {
	view := PublicationView{
		ID:              p.ID(),
		AuthorID:        p.AuthorID(),
		Text:            p.Text(),
		Type:            p.Type(),
		Visibility:      p.Visibility(),
		LikesCount:      p.LikesCount(),
		CommentsCount:   p.CommentsCount(),
		MediaItems:      p.MediaItems(),
		CreatedAt:       p.CreatedAt(),
		UpdatedAt:       p.UpdatedAt(),
		IsLikedByViewer: liked,
	}
	if a, ok := authors[p.AuthorID()]; ok {
		view.Author = &a
	}
	return view
}
