// Package userset holds the dashboard's working set of users.
//
// A Set is the in-memory list backing one signed-in session's user
// table. It preserves backend response order and is reconciled in
// place after each mutation instead of re-fetching: creates append,
// updates merge by id, deletes remove by id. Search filtering is a
// derived view and never mutates the stored list.
package userset

import (
	"strconv"
	"strings"
	"sync"

	"github.com/userhub/userhub/internal/domain/models"
)

// Set is one working set. Safe for concurrent use; browser tabs can
// hit the same session's dashboard at once.
type Set struct {
	mu    sync.RWMutex
	users []models.User
}

// Replace swaps in a freshly fetched list, keeping backend order.
func (s *Set) Replace(users []models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users[:0:0], users...)
}

// Users returns a copy of the working set in its stored order.
func (s *Set) Users() []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.User(nil), s.users...)
}

// Len returns the number of users in the set.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.users)
}

// Get returns the user with the given id and a found flag.
func (s *Set) Get(id int64) (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

// Append adds a newly created user to the end of the list. If the id
// is already present (a re-submitted form), the existing record is
// merged instead so the set never holds duplicates.
func (s *Set) Append(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == u.ID {
			s.users[i] = merge(s.users[i], u)
			return
		}
	}
	s.users = append(s.users, u)
}

// Merge replaces the record with upd's id in place, layering the
// returned fields over the previous record so presentation-only
// fields the backend did not echo survive the update. Unknown ids are
// ignored; the next full fetch reconciles.
func (s *Set) Merge(upd models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == upd.ID {
			s.users[i] = merge(s.users[i], upd)
			return
		}
	}
}

// Remove deletes the user with the given id, preserving the order of
// the rest.
func (s *Set) Remove(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return
		}
	}
}

// Filter returns the users whose string form contains term in any
// field, case-insensitively. An empty term matches everything. The
// result preserves stored order and shares no backing array with the
// set.
func (s *Set) Filter(term string) []models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return append([]models.User(nil), s.users...)
	}

	var out []models.User
	for _, u := range s.users {
		if Matches(u, term) {
			out = append(out, u)
		}
	}
	return out
}

// Matches reports whether any field value of u contains the
// already-lowercased term as a substring. Password is never stored in
// a working set, so it does not participate.
func Matches(u models.User, term string) bool {
	for _, v := range fieldValues(u) {
		if strings.Contains(strings.ToLower(v), term) {
			return true
		}
	}
	return false
}

func fieldValues(u models.User) []string {
	return []string{
		strconv.FormatInt(u.ID, 10),
		u.FirstName,
		u.LastName,
		u.Username,
		u.Email,
		u.Role,
		u.Status,
		u.PhotoURL,
		u.JoinedDate,
		u.LastLogin,
		u.AccountStatus,
	}
}

// merge layers upd over prev: non-empty fields from upd win, empty
// fields keep the previous value.
func merge(prev, upd models.User) models.User {
	out := prev
	out.ID = upd.ID
	if upd.FirstName != "" {
		out.FirstName = upd.FirstName
	}
	if upd.LastName != "" {
		out.LastName = upd.LastName
	}
	if upd.Username != "" {
		out.Username = upd.Username
	}
	if upd.Email != "" {
		out.Email = upd.Email
	}
	if upd.Role != "" {
		out.Role = upd.Role
	}
	if upd.Status != "" {
		out.Status = upd.Status
	}
	if upd.PhotoURL != "" {
		out.PhotoURL = upd.PhotoURL
	}
	if upd.JoinedDate != "" {
		out.JoinedDate = upd.JoinedDate
	}
	if upd.LastLogin != "" {
		out.LastLogin = upd.LastLogin
	}
	if upd.AccountStatus != "" {
		out.AccountStatus = upd.AccountStatus
	}
	// Password is write-only and never retained.
	out.Password = ""
	return out
}
