package service

import (
	redisrepo "github.com/kirinyoku/flightdesk/internal/repository/redis"
	"github.com/kirinyoku/flightdesk/internal/service/checkin"
	"github.com/kirinyoku/flightdesk/internal/service/directory"
)

type Services struct {
	Directory *directory.Service
	CheckIn   *checkin.Service
}

type Config struct {
	Directory directory.Config
	CheckIn   checkin.Config
}

// NewServices wires the services over a flight source. cache and publisher
// may be nil when Redis is not configured.
func NewServices(
	repo directory.Repository,
	cache *redisrepo.Cache,
	publisher checkin.Publisher,
	cfg Config,
) *Services {
	dir := directory.New(repo, cache, cfg.Directory)

	return &Services{
		Directory: dir,
		CheckIn:   checkin.New(dir, publisher, cfg.CheckIn),
	}
}
