package sngraph

import (
	"github.com/bsm/sngraph/container"
)

// Post is a single piece of user content.
type Post struct {
	Body   string   // the post text
	Topics []string // ordered topic tags
}

// Rank is the result of a ranking query. A zero Rank means the graph
// had no users.
type Rank struct {
	ID    string
	Name  string
	Count int
}

// PostMatch is a single post search hit.
type PostMatch struct {
	UserID   string
	UserName string
	Body     string
}

// User is a graph member. Ids are opaque tokens, compared by equality
// only.
type User struct {
	ID   string
	Name string

	posts     *container.List[Post]
	followers *container.Sequence[string]
}

// NumPosts returns the number of posts.
func (u *User) NumPosts() int { return u.posts.Len() }

// Posts returns a cursor over the user's posts in insertion order.
func (u *User) Posts() *container.Cursor[Post] { return u.posts.Scan() }

// NumFollowers returns the number of recorded followers.
func (u *User) NumFollowers() int { return u.followers.Len() }

// Followers returns a copy of the user's follower ids in insertion
// order.
func (u *User) Followers() []string { return u.followers.Slice() }

func (u *User) hasFollower(id string) bool {
	for i := 0; i < u.followers.Len(); i++ {
		if fid, _ := u.followers.Get(i); fid == id {
			return true
		}
	}
	return false
}
