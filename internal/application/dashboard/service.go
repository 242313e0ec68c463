// Package dashboard builds the summary dashboards of the admin UI. Each
// dashboard reads every listing it needs concurrently, joins the rows by
// foreign key and computes its counts, sums and percentages.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bizdesk/backend/internal/domain/resource"
	"github.com/bizdesk/backend/internal/infrastructure/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Lister reads every row of one listing view
type Lister interface {
	List(ctx context.Context) ([]Row, error)
}

// Dashboard names
const (
	Procurement = "procurement"
	Sales       = "sales"
	Inventory   = "inventory"
	Personnel   = "personnel"
	Feedback    = "feedback"
)

var tracer = otel.Tracer("github.com/bizdesk/backend/internal/application/dashboard")

// Service assembles dashboards from resource listers. Nothing is cached:
// every call refetches all of its sources.
type Service struct {
	listers map[*resource.Resource]Lister
	logger  *zap.Logger
}

// NewService creates a Service over listers keyed by the resource they read
func NewService(listers map[*resource.Resource]Lister, logger *zap.Logger) *Service {
	return &Service{listers: listers, logger: logger}
}

// Names lists the dashboards Build accepts
func Names() []string {
	names := make([]string, 0, len(builders))
	for n := range builders {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

type builder struct {
	sources []*resource.Resource
	build   func(data fetched) any
}

var builders = map[string]builder{
	Procurement: {
		sources: []*resource.Resource{resource.PurchaseOrder, resource.Supplier, resource.PurchaseOrderItem},
		build:   func(d fetched) any { return buildProcurement(d) },
	},
	Sales: {
		sources: []*resource.Resource{resource.Order, resource.Customer, resource.Invoice, resource.Payment},
		build:   func(d fetched) any { return buildSales(d) },
	},
	Inventory: {
		sources: []*resource.Resource{resource.Inventory, resource.Product, resource.Category},
		build:   func(d fetched) any { return buildInventory(d) },
	},
	Personnel: {
		sources: []*resource.Resource{resource.Employee, resource.Role, resource.Attendance, resource.Performance},
		build:   func(d fetched) any { return buildPersonnel(d) },
	},
	Feedback: {
		sources: []*resource.Resource{resource.Feedback, resource.Customer, resource.Product},
		build:   func(d fetched) any { return buildFeedback(d) },
	},
}

// ErrUnknownDashboard is returned by Build for names not in Names()
var ErrUnknownDashboard = errors.New("unknown dashboard")

// Result is one assembled dashboard
type Result struct {
	Name string `json:"name"`
	// FailedSources lists the resources that could not be read and were
	// aggregated as empty.
	FailedSources []string `json:"failed_sources"`
	Data          any      `json:"data"`
}

// Build fetches the sources of the named dashboard and aggregates them.
// A failed source is logged and treated as empty, so Build only errors on
// an unknown name.
func (s *Service) Build(ctx context.Context, name string) (*Result, error) {
	b, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDashboard, name)
	}

	ctx, span := tracer.Start(ctx, "dashboard."+name)
	defer span.End()

	data := s.fetch(ctx, b.sources)
	span.SetAttributes(attribute.Int("dashboard.failed_sources", len(data.failed)))
	return &Result{Name: name, FailedSources: data.failed, Data: b.build(data)}, nil
}

// fetched holds the rows of each source plus the sources that failed
type fetched struct {
	rows   map[*resource.Resource][]Row
	failed []string
}

func (d fetched) of(res *resource.Resource) []Row {
	return d.rows[res]
}

// fetch issues every read concurrently and waits for all of them
func (s *Service) fetch(ctx context.Context, sources []*resource.Resource) fetched {
	var (
		mu   sync.Mutex
		data = fetched{rows: make(map[*resource.Resource][]Row, len(sources)), failed: []string{}}
		g    errgroup.Group
	)
	for _, res := range sources {
		g.Go(func() error {
			rows, err := s.list(ctx, res)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.log(ctx).Warn("Dashboard source failed",
					zap.String("resource", res.Path),
					zap.Error(err),
				)
				data.failed = append(data.failed, res.Path)
				rows = []Row{}
			}
			data.rows[res] = rows
			return nil
		})
	}
	_ = g.Wait()
	sort.Strings(data.failed)
	return data
}

func (s *Service) list(ctx context.Context, res *resource.Resource) ([]Row, error) {
	l, ok := s.listers[res]
	if !ok {
		return nil, fmt.Errorf("no lister for %s", res.Path)
	}
	return l.List(ctx)
}

func (s *Service) log(ctx context.Context) *zap.Logger {
	if logger.GetRequestID(ctx) != "" {
		return logger.L(ctx)
	}
	return s.logger
}
