package backend

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pipewatch/pipewatch/pkg/domain/model"
	"github.com/pipewatch/pipewatch/pkg/domain/types"
)

func (x *Client) ListRepositories(ctx context.Context) ([]*model.Repository, error) {
	query := url.Values{"user_id": {x.userID()}}

	var repos []*model.Repository
	if err := x.do(ctx, http.MethodGet, "/repos", query, nil, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

func (x *Client) CreateRepository(ctx context.Context, input *model.CreateRepositoryInput) (*model.Repository, error) {
	var repo model.Repository
	if err := x.do(ctx, http.MethodPost, "/repos", nil, input, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

func (x *Client) UpdateRepository(ctx context.Context, id types.RepoID, input *model.UpdateRepositoryInput) (*model.Repository, error) {
	var repo model.Repository
	if err := x.do(ctx, http.MethodPut, "/repos/"+string(id), nil, input, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

func (x *Client) DeleteRepository(ctx context.Context, id types.RepoID) error {
	return x.do(ctx, http.MethodDelete, "/repos/"+string(id), nil, nil, nil)
}
