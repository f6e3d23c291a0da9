package explore

import "github.com/triplinker/triplinker-api/internal/domain"

// State is the explore slice: the feed plus the session's liked-post set.
// The liked set is the source of truth for like adjustments; post payloads
// are re-derived from it on every fetch.
type State struct {
	Posts   []domain.TravelPost
	Loading bool
	Err     string
	Liked   []domain.PostID
}

func (s State) isLiked(id domain.PostID) bool {
	for _, l := range s.Liked {
		if l == id {
			return true
		}
	}
	return false
}

type event interface{ isExploreEvent() }

type fetchPending struct{}
type fetchFulfilled struct{ posts []domain.TravelPost }
type fetchRejected struct{ msg string }
type likeToggled struct{ id domain.PostID }

func (fetchPending) isExploreEvent()   {}
func (fetchFulfilled) isExploreEvent() {}
func (fetchRejected) isExploreEvent()  {}
func (likeToggled) isExploreEvent()    {}

// reduce is the pure transition function for the explore slice.
func reduce(s State, ev event) State {
	switch ev := ev.(type) {
	case fetchPending:
		s.Loading = true
		s.Err = ""
	case fetchFulfilled:
		s.Loading = false
		// Replace wholesale, then re-derive like state from the canonical
		// payload: +1 on the fetched baseline for liked posts, never on a
		// previously adjusted count, so repeated fetches don't compound.
		posts := make([]domain.TravelPost, len(ev.posts))
		for i, p := range ev.posts {
			cp := clonePost(p)
			cp.IsLiked = s.isLiked(p.ID)
			if cp.IsLiked {
				cp.Likes = p.Likes + 1
			}
			posts[i] = cp
		}
		s.Posts = posts
	case fetchRejected:
		// Posts keep their prior value; only the bracket fields change.
		s.Loading = false
		s.Err = ev.msg
	case likeToggled:
		idx := -1
		for i, p := range s.Posts {
			if p.ID == ev.id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return s // unknown post: no state change
		}
		posts := make([]domain.TravelPost, len(s.Posts))
		copy(posts, s.Posts)
		post := clonePost(posts[idx])
		if s.isLiked(ev.id) {
			liked := make([]domain.PostID, 0, len(s.Liked)-1)
			for _, l := range s.Liked {
				if l != ev.id {
					liked = append(liked, l)
				}
			}
			s.Liked = liked
			post.Likes--
			post.IsLiked = false
		} else {
			s.Liked = append(append([]domain.PostID(nil), s.Liked...), ev.id)
			post.Likes++
			post.IsLiked = true
		}
		posts[idx] = post
		s.Posts = posts
	}
	return s
}

func clonePost(p domain.TravelPost) domain.TravelPost {
	cp := p
	if p.Tags != nil {
		cp.Tags = append([]string(nil), p.Tags...)
	}
	return cp
}

func cloneState(s State) State {
	if s.Posts != nil {
		posts := make([]domain.TravelPost, len(s.Posts))
		for i, p := range s.Posts {
			posts[i] = clonePost(p)
		}
		s.Posts = posts
	}
	if s.Liked != nil {
		s.Liked = append([]domain.PostID(nil), s.Liked...)
	}
	return s
}
