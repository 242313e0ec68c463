package handler

import (
	"fmt"

	"github.com/bizdesk/backend/internal/domain/resource"
	"github.com/bizdesk/backend/internal/interfaces/http/router"
)

// Dependencies are the collaborators the API routes are built from
type Dependencies struct {
	// Stores holds the accessor of every catalog resource.
	Stores map[*resource.Resource]Accessor
	// OrderItems is the guarded accessor that serves order item mutations.
	OrderItems Accessor
	Dashboards DashboardBuilder
	// Archive is nil when export storage is disabled.
	Archive Archive
}

// Groups builds one route group per resource group:
//
//	GET    /<r>                list
//	GET    /<r>/export         XLSX download
//	POST   /<r>/export         archive to object storage
//	POST   /<r>/add            create
//	PUT    /<r>/update         update by key
//	DELETE /<r>/delete/:id     delete by key
//
// Read-only views only get the list and export routes. The custom group
// also serves the dashboards.
func Groups(deps Dependencies) ([]*router.DomainGroup, error) {
	groups := make(map[string]*router.DomainGroup)
	ordered := make([]*router.DomainGroup, 0, len(resource.Groups()))
	for _, name := range resource.Groups() {
		g := router.NewDomainGroup(name, "/"+name)
		groups[name] = g
		ordered = append(ordered, g)
	}

	for _, res := range resource.Catalog() {
		store, ok := deps.Stores[res]
		if !ok {
			return nil, fmt.Errorf("no store for resource %s/%s", res.Group, res.Path)
		}
		g := groups[res.Group]
		h := NewResourceHandler(res, store)
		exp := NewExportHandler(res, store, deps.Archive)

		g.GET(res.Route(), h.List)
		g.GET(res.Route()+"/export", exp.Download)
		g.POST(res.Route()+"/export", exp.Archive)
		if res.ReadOnly() {
			continue
		}

		add, update, del := h.Add, h.Update, h.Delete
		if res == resource.OrderItem && deps.OrderItems != nil {
			oi := NewOrderItemHandler(deps.OrderItems)
			add, update, del = oi.Add, oi.Update, oi.Delete
		}
		g.POST(res.Route()+"/add", add)
		g.PUT(res.Route()+"/update", update)
		g.DELETE(res.DeleteRoute(), del)
	}

	if deps.Dashboards != nil {
		dh := NewDashboardHandler(deps.Dashboards)
		groups[resource.GroupCustom].
			GET("/dashboard", dh.List).
			GET("/dashboard/:name", dh.Get)
	}
	return ordered, nil
}
