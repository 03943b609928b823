package model

import (
	"fmt"
	"strings"
)

// User is one person in the configured rotation.
type User struct {
	FirstName string
	LastName  string
}

func (u User) FullName() string {
	return fmt.Sprintf("%s %s", u.FirstName, u.LastName)
}

// ParseUsers splits a whitespace-separated token list into users, grouping
// consecutive tokens in pairs as (first, last). Token order defines the
// rotation order.
func ParseUsers(s string) ([]User, error) {
	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return nil, fmt.Errorf("no user names configured")
	}
	if len(tokens)%2 != 0 {
		return nil, fmt.Errorf("user_name must contain first/last name pairs, got %d tokens", len(tokens))
	}

	users := make([]User, 0, len(tokens)/2)
	for i := 0; i < len(tokens); i += 2 {
		users = append(users, User{FirstName: tokens[i], LastName: tokens[i+1]})
	}
	return users, nil
}
