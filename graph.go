package sngraph

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/bsm/sngraph/container"
)

// Graph is the social network model.
type Graph struct {
	users *container.Sequence[*User]
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{users: container.NewSequence[*User]()}
}

// NumUsers returns the number of registered users.
func (g *Graph) NumUsers() int { return g.users.Len() }

// AddUser registers a new user and reports whether it was added.
// Adding an id twice is a no-op, the first write wins.
func (g *Graph) AddUser(id, name string) bool {
	if g.findIndex(id) >= 0 {
		return false
	}
	g.users.Append(&User{
		ID:        id,
		Name:      name,
		posts:     container.NewList[Post](),
		followers: container.NewSequence[string](),
	})
	return true
}

// AddFollower records that followerID follows userID and reports
// whether the edge was added. Unknown users and already-recorded
// followers are ignored.
func (g *Graph) AddFollower(userID, followerID string) bool {
	u := g.at(g.findIndex(userID))
	if u == nil || u.hasFollower(followerID) {
		return false
	}
	u.followers.Append(followerID)
	return true
}

// AddPost appends a post to userID's timeline and reports whether it
// was added. Unknown users are ignored.
func (g *Graph) AddPost(userID, body string, topics []string) bool {
	u := g.at(g.findIndex(userID))
	if u == nil {
		return false
	}
	u.posts.PushBack(Post{Body: body, Topics: topics})
	return true
}

// Lookup returns the user with the given id, if present.
func (g *Graph) Lookup(id string) (*User, bool) {
	if u := g.at(g.findIndex(id)); u != nil {
		return u, true
	}
	return nil, false
}

// MostActive returns the user following the most accounts. The
// out-degree is derived by counting how often each id occurs across
// all follower sequences. Ties go to the user scanned first; an empty
// graph yields a zero Rank.
func (g *Graph) MostActive() Rank {
	counts := make(map[string]int, g.users.Len())
	for i := 0; i < g.users.Len(); i++ {
		u := g.at(i)
		for j := 0; j < u.followers.Len(); j++ {
			fid, _ := u.followers.Get(j)
			counts[fid]++
		}
	}

	var best Rank
	found := false
	for i := 0; i < g.users.Len(); i++ {
		u := g.at(i)
		if n := counts[u.ID]; !found || n > best.Count {
			best = Rank{ID: u.ID, Name: u.Name, Count: n}
			found = true
		}
	}
	return best
}

// MostInfluencer returns the user with the longest follower sequence.
// Ties go to the user scanned first; an empty graph yields a zero
// Rank.
func (g *Graph) MostInfluencer() Rank {
	var best Rank
	found := false
	for i := 0; i < g.users.Len(); i++ {
		u := g.at(i)
		if n := u.followers.Len(); !found || n > best.Count {
			best = Rank{ID: u.ID, Name: u.Name, Count: n}
			found = true
		}
	}
	return best
}

// MutualFollowers returns the ids following every one of the given
// users, sorted. An empty input or any unknown id yields an empty
// result.
func (g *Graph) MutualFollowers(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}

	common, ok := g.followerSet(ids[0])
	if !ok {
		return nil
	}
	for _, id := range ids[1:] {
		fset, ok := g.followerSet(id)
		if !ok {
			return nil
		}
		for fid := range common {
			if !fset[fid] {
				delete(common, fid)
			}
		}
	}
	return sortedKeys(common)
}

// SuggestFollows returns two-hop follow candidates for id, sorted:
// the followers of every account id already follows, excluding id
// itself and every account already followed. Unknown ids yield an
// empty result.
func (g *Graph) SuggestFollows(id string) []string {
	if g.findIndex(id) < 0 {
		return nil
	}

	// invert the follower relation to find the accounts id follows
	follows := make(map[string]bool)
	for i := 0; i < g.users.Len(); i++ {
		if u := g.at(i); u.hasFollower(id) {
			follows[u.ID] = true
		}
	}

	suggest := make(map[string]bool)
	for i := 0; i < g.users.Len(); i++ {
		u := g.at(i)
		if !follows[u.ID] {
			continue
		}
		for j := 0; j < u.followers.Len(); j++ {
			fid, _ := u.followers.Get(j)
			if fid != id && !follows[fid] {
				suggest[fid] = true
			}
		}
	}
	return sortedKeys(suggest)
}

// SearchPostsByWord returns every post whose body contains word,
// case-insensitively, in graph scan order then post insertion order.
func (g *Graph) SearchPostsByWord(word string) []PostMatch {
	needle := strings.ToLower(word)

	var out []PostMatch
	for i := 0; i < g.users.Len(); i++ {
		u := g.at(i)
		for c := u.posts.Scan(); c.Next(); {
			body := strings.TrimSpace(c.Value().Body)
			if strings.Contains(strings.ToLower(body), needle) {
				out = append(out, PostMatch{UserID: u.ID, UserName: u.Name, Body: body})
			}
		}
	}
	return out
}

// SearchPostsByTopic returns every post tagged with topic, comparing
// whole topic tokens case-insensitively, in graph scan order then
// post insertion order.
func (g *Graph) SearchPostsByTopic(topic string) []PostMatch {
	needle := strings.ToLower(topic)

	var out []PostMatch
	for i := 0; i < g.users.Len(); i++ {
		u := g.at(i)
		for c := u.posts.Scan(); c.Next(); {
			post := c.Value()
			for _, t := range post.Topics {
				if strings.ToLower(strings.TrimSpace(t)) == needle {
					out = append(out, PostMatch{UserID: u.ID, UserName: u.Name, Body: post.Body})
					break
				}
			}
		}
	}
	return out
}

// findIndex scans for id and returns -1 when it is not present.
func (g *Graph) findIndex(id string) int {
	for i := 0; i < g.users.Len(); i++ {
		if g.at(i).ID == id {
			return i
		}
	}
	return -1
}

// at returns the user at index i, nil when out of range.
func (g *Graph) at(i int) *User {
	u, err := g.users.Get(i)
	if err != nil {
		return nil
	}
	return u
}

func (g *Graph) followerSet(id string) (map[string]bool, bool) {
	u := g.at(g.findIndex(id))
	if u == nil {
		return nil, false
	}

	set := make(map[string]bool, u.followers.Len())
	for i := 0; i < u.followers.Len(); i++ {
		fid, _ := u.followers.Get(i)
		set[fid] = true
	}
	return set, true
}

func sortedKeys(set map[string]bool) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	slices.Sort(out)
	return out
}
