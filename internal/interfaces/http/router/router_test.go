package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewRouter(t *testing.T) {
	r := NewRouter(gin.New())

	assert.Equal(t, "/api", r.Prefix())
	assert.Empty(t, r.registrars)
}

func TestRouterWithPrefix(t *testing.T) {
	r := NewRouter(gin.New(), WithPrefix("/internal"))
	assert.Equal(t, "/internal", r.Prefix())
}

func TestRouterSetup(t *testing.T) {
	engine := gin.New()
	r := NewRouter(engine)

	personnel := NewDomainGroup("personnel", "/personnel")
	personnel.GET("/role", func(c *gin.Context) {
		c.String(http.StatusOK, "roles")
	})
	poi := NewDomainGroup("poi", "/poi")
	poi.DELETE("/category/delete/:id", func(c *gin.Context) {
		c.String(http.StatusOK, c.Param("id"))
	})

	r.Register(personnel, poi).Setup()

	tests := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/personnel/role", "roles"},
		{http.MethodDelete, "/api/poi/category/delete/42", "42"},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.body, w.Body.String())
		})
	}
}

func TestDomainGroup(t *testing.T) {
	t.Run("name and prefix", func(t *testing.T) {
		g := NewDomainGroup("oap", "/oap")
		assert.Equal(t, "oap", g.Name())
		assert.Equal(t, "/oap", g.Prefix())
	})

	t.Run("routes are listed sorted", func(t *testing.T) {
		noop := func(c *gin.Context) {}
		g := NewDomainGroup("oap", "/oap")
		g.PUT("/orders/update", noop).POST("/orders/add", noop).GET("/orders", noop)

		routes := g.Routes()
		require.Len(t, routes, 3)
		assert.Equal(t, "/orders", routes[0].Path)
		assert.Equal(t, "/orders/add", routes[1].Path)
		assert.Equal(t, http.MethodPut, routes[2].Method)
	})

	t.Run("middleware runs before handlers", func(t *testing.T) {
		engine := gin.New()
		g := NewDomainGroup("poi", "/poi")
		g.Use(func(c *gin.Context) {
			c.Header("X-Group", "poi")
			c.Next()
		})
		g.GET("/product", func(c *gin.Context) {
			c.Status(http.StatusNoContent)
		})
		g.RegisterRoutes(engine.Group("/api"))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/poi/product", nil))

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Equal(t, "poi", w.Header().Get("X-Group"))
	})

	t.Run("unknown route is 404", func(t *testing.T) {
		engine := gin.New()
		NewDomainGroup("poi", "/poi").RegisterRoutes(engine.Group("/api"))

		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/poi/missing", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
