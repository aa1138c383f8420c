package infra

import (
	"github.com/pipewatch/pipewatch/pkg/domain/interfaces"
	"github.com/pipewatch/pipewatch/pkg/repository/memory"
)

type Clients struct {
	backend interfaces.Backend
	store   interfaces.Store
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		store: memory.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) Backend() interfaces.Backend {
	return x.backend
}
func (x *Clients) Store() interfaces.Store {
	return x.store
}

func WithBackend(client interfaces.Backend) Option {
	return func(x *Clients) {
		x.backend = client
	}
}

func WithStore(store interfaces.Store) Option {
	return func(x *Clients) {
		x.store = store
	}
}
