package brands

import (
	"github.com/scentmatch/server/api/rest/pagination"
	"github.com/scentmatch/server/scentmatch/brands"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type ListResponse struct {
	Brands     []brands.Brand  `json:"brands"`
	Pagination pagination.Meta `json:"pagination"`
}
