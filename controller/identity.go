package controller

import (
	"errors"
	"fmt"
	"strings"

	"github.com/xNickChildx/mult-ff-viewer-pub/model"
)

// ErrIdentityNotFound means no team in the league has an owner matching the
// configured user name.
var ErrIdentityNotFound = errors.New("no team found for user")

func (c *controller) ResolveTeam(l *model.League, userName string) (*model.Team, error) {
	for i := range l.Teams {
		for _, o := range l.Teams[i].Owners {
			if strings.Contains(userName, o.FullName()) {
				return &l.Teams[i], nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q in league %s", ErrIdentityNotFound, userName, l.ID)
}
