package feed

import (
	"context"
	"sort"
	"sync"

	"socialfeed/internal/common"
	"socialfeed/internal/like"
	"socialfeed/internal/publication"
	"socialfeed/internal/visibility"
)

type memData struct {
	pubs    map[string]publication.State
	likes   map[string]like.Like
	authors map[string]AuthorSummary
	saves   int
	// staleSaves makes the next n saves lose the version race.
	staleSaves int
}

func (d *memData) clone() *memData {
	c := &memData{
		pubs:       make(map[string]publication.State, len(d.pubs)),
		likes:      make(map[string]like.Like, len(d.likes)),
		authors:    d.authors,
		saves:      d.saves,
		staleSaves: d.staleSaves,
	}
	for k, v := range d.pubs {
		c.pubs[k] = publication.Rehydrate(v).State()
	}
	for k, v := range d.likes {
		c.likes[k] = v
	}
	return c
}

// memStore is an in-memory Store. Transactions hold one lock for their whole duration
// and roll back to a snapshot on error.
type memStore struct {
	mu   *sync.Mutex
	inTx bool
	d    *memData
}

var _ Store = (*memStore)(nil)

func newMemStore() *memStore {
	return &memStore{
		mu: &sync.Mutex{},
		d: &memData{
			pubs:    make(map[string]publication.State),
			likes:   make(map[string]like.Like),
			authors: make(map[string]AuthorSummary),
		},
	}
}

func (s *memStore) lock() func() {
	if s.inTx {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func likeKey(userID string, t like.Target) string { return userID + "|" + t.String() }

func (s *memStore) FindPublicationByID(_ context.Context, id string) (*publication.Publication, error) {
	defer s.lock()()
	st, ok := s.d.pubs[id]
	if !ok {
		return nil, common.NotFound("publication %s not found", id)
	}
	return publication.Rehydrate(st), nil
}

func (s *memStore) SavePublication(_ context.Context, p *publication.Publication) error {
	defer s.lock()()
	st := p.State()
	if s.d.staleSaves > 0 {
		s.d.staleSaves--
		return &common.Error{Kind: common.KindConflict, Message: "stale", Err: ErrStaleVersion}
	}
	stored, exists := s.d.pubs[st.ID]
	switch {
	case st.Version == 0 && exists:
		return common.Conflict("publication %s already exists", st.ID)
	case st.Version != 0 && (!exists || stored.Version != st.Version):
		return &common.Error{Kind: common.KindConflict, Message: "stale", Err: ErrStaleVersion}
	}
	st.Version++
	s.d.pubs[st.ID] = st
	s.d.saves++
	p.SetVersion(st.Version)
	return nil
}

func (s *memStore) ListPublications(_ context.Context, q PublicationQuery) ([]*publication.Publication, int64, error) {
	defer s.lock()()
	var matched []publication.State
	for _, st := range s.d.pubs {
		if !st.IsActive || (q.AuthorID != "" && st.AuthorID != q.AuthorID) {
			continue
		}
		if !q.Scope.Admits(st.AuthorID, st.Visibility) {
			continue
		}
		matched = append(matched, st)
	}
	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})

	total := int64(len(matched))
	start := q.Page.Offset()
	if start > len(matched) {
		start = len(matched)
	}
	end := start + q.Page.Limit
	if end > len(matched) {
		end = len(matched)
	}
	out := make([]*publication.Publication, 0, end-start)
	for _, st := range matched[start:end] {
		st.Comments = nil
		out = append(out, publication.Rehydrate(st))
	}
	return out, total, nil
}

func (s *memStore) ListActivePublicationIDs(_ context.Context, afterID string, limit int) ([]string, error) {
	defer s.lock()()
	var ids []string
	for id, st := range s.d.pubs {
		if st.IsActive && id > afterID {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	if len(ids) > limit {
		ids = ids[:limit]
	}
	return ids, nil
}

func (s *memStore) RecordLike(_ context.Context, l like.Like) error {
	defer s.lock()()
	key := likeKey(l.UserID, l.Target)
	if _, ok := s.d.likes[key]; ok {
		return common.Conflict("%s already liked by %s", l.Target, l.UserID)
	}
	s.d.likes[key] = l
	return nil
}

func (s *memStore) RemoveLike(_ context.Context, userID string, target like.Target) (bool, error) {
	defer s.lock()()
	key := likeKey(userID, target)
	if _, ok := s.d.likes[key]; !ok {
		return false, nil
	}
	delete(s.d.likes, key)
	return true, nil
}

func (s *memStore) FindLikedTargets(_ context.Context, userID string, kind like.Kind, ids []string) (map[string]bool, error) {
	defer s.lock()()
	out := make(map[string]bool, len(ids))
	for _, id := range ids {
		var t like.Target
		if kind == like.KindComment {
			t = like.CommentTarget(id)
		} else {
			t = like.PublicationTarget(id)
		}
		_, out[id] = s.d.likes[likeKey(userID, t)]
	}
	return out, nil
}

func (s *memStore) FindAuthors(_ context.Context, ids []string) (map[string]AuthorSummary, error) {
	defer s.lock()()
	out := make(map[string]AuthorSummary)
	for _, id := range ids {
		if a, ok := s.d.authors[id]; ok {
			out[id] = a
		}
	}
	return out, nil
}

func (s *memStore) Transaction(_ context.Context, fn func(tx Store) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.d.clone()
	if err := fn(&memStore{mu: s.mu, inTx: true, d: s.d}); err != nil {
		stale := s.d.staleSaves
		*s.d = *snapshot
		s.d.staleSaves = stale
		return err
	}
	return nil
}

func (s *memStore) likeCount() int {
	defer s.lock()()
	return len(s.d.likes)
}

func (s *memStore) saveCount() int {
	defer s.lock()()
	return s.d.saves
}

func (s *memStore) failNextSaves(n int) {
	defer s.lock()()
	s.d.staleSaves = n
}

// --------- COLLABORATORS ---------

type staticFriends map[string][]string

var _ visibility.FriendSource = staticFriends(nil)

func (f staticFriends) FriendIDs(_ context.Context, userID string) ([]string, error) {
	return f[userID], nil
}

type raisedAlert struct {
	contextID string
	kind      common.ContentKind
	authorID  string
}

type recordingAlerter struct {
	mu     sync.Mutex
	alerts []raisedAlert
}

func (a *recordingAlerter) RaiseCrisisAlert(contextID string, kind common.ContentKind, authorID string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.alerts = append(a.alerts, raisedAlert{contextID: contextID, kind: kind, authorID: authorID})
}

func (a *recordingAlerter) raised() []raisedAlert {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]raisedAlert(nil), a.alerts...)
}

type recordingEmitter struct {
	mu     sync.Mutex
	events []string
	err    error
}

func (e *recordingEmitter) Emit(_ context.Context, eventType string, _ map[string]interface{}) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, eventType)
	return e.err
}

func (e *recordingEmitter) emitted() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.events...)
}
