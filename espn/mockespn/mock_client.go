package mockespn

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xNickChildx/mult-ff-viewer-pub/model"
)

type Client struct {
	mock.Mock
}

func (c *Client) FetchLeague(ctx context.Context, leagueID string, year int, espnS2, swid string) (*model.League, error) {
	args := c.Called(ctx, leagueID, year, espnS2, swid)

	var res *model.League
	if args.Get(0) != nil {
		res = args.Get(0).(*model.League)
	}

	return res, args.Error(1)
}
