package collections

import (
	"github.com/scentmatch/server/api/rest/pagination"
	"github.com/scentmatch/server/scentmatch/collections"
)

const (
	defaultLimit = 24
	maxLimit     = 100
)

type ListResponse struct {
	Entries    []collections.Entry `json:"entries"`
	Pagination pagination.Meta     `json:"pagination"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
