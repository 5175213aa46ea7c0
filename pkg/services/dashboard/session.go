package dashboard

import (
	"context"
	"sync"

	"github.com/de-tools/retail-dashboard/pkg/models/domain"
)

// Session is one display of the dashboard. It runs exactly one fetch cycle,
// no matter how many times its state is read.
type Session struct {
	loader *Loader
	once   sync.Once
	dash   *domain.Dashboard
}

func (l *Loader) NewSession() *Session {
	return &Session{loader: l}
}

func (s *Session) Dashboard(ctx context.Context) *domain.Dashboard {
	s.once.Do(func() {
		s.dash = s.loader.Load(ctx)
	})
	return s.dash
}

func (s *Session) Page(ctx context.Context) Page {
	return BuildPage(s.Dashboard(ctx))
}
