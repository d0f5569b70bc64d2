package router

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"starwarsapi/internal/middleware"
	"starwarsapi/internal/modules/catalog"
	"starwarsapi/internal/modules/favorite"
	"starwarsapi/internal/modules/user"
	"starwarsapi/internal/repository"
)

type Options struct {
	CurrentUserID  int64
	AllowedOrigins []string
	AccessLog      bool
}

// Endpoint is one entry of the sitemap served at GET /.
type Endpoint struct {
	Method string `json:"method"`
	Path   string `json:"path"`
}

// New wires repositories, services and handlers onto a gin engine.
func New(db *gorm.DB, opts Options) *gin.Engine {
	userRepo := repository.NewUserRepository(db)
	peopleRepo := repository.NewPeopleRepository(db)
	planetRepo := repository.NewPlanetRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	catalogHandler := catalog.NewHandler(catalog.NewService(peopleRepo, planetRepo))
	userHandler := user.NewHandler(user.NewService(userRepo))
	favoriteHandler := favorite.NewHandler(favorite.NewService(favoriteRepo, planetRepo, peopleRepo))

	r := gin.New()
	_ = r.SetTrustedProxies(nil)
	if opts.AccessLog {
		r.Use(gin.Logger())
	}
	r.Use(
		middleware.RequestID(),
		middleware.ErrorLogger(),
		middleware.CORS(opts.AllowedOrigins),
		gzip.Gzip(gzip.DefaultCompression),
		middleware.Identity(opts.CurrentUserID),
	)

	r.GET("/", sitemap(r))

	api := r.Group("")
	userHandler.RegisterRoutes(api)
	catalogHandler.RegisterRoutes(api)
	favoriteHandler.RegisterRoutes(api)

	return r
}

// Sitemap lists every registered route except the sitemap itself, sorted by
// path then method.
func Sitemap(r *gin.Engine) []Endpoint {
	routes := r.Routes()
	endpoints := make([]Endpoint, 0, len(routes))
	for _, rt := range routes {
		if rt.Path == "/" {
			continue
		}
		endpoints = append(endpoints, Endpoint{Method: rt.Method, Path: rt.Path})
	}
	sort.Slice(endpoints, func(i, j int) bool {
		if endpoints[i].Path != endpoints[j].Path {
			return endpoints[i].Path < endpoints[j].Path
		}
		return endpoints[i].Method < endpoints[j].Method
	})
	return endpoints
}

func sitemap(r *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"endpoints": Sitemap(r)})
	}
}

// StripTrailingSlash makes /people/ and /people hit the same route without a
// redirect round trip.
func StripTrailingSlash(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if p := req.URL.Path; len(p) > 1 && strings.HasSuffix(p, "/") {
			req.URL.Path = strings.TrimRight(p, "/")
			if req.URL.Path == "" {
				req.URL.Path = "/"
			}
			if req.URL.RawPath != "" {
				req.URL.RawPath = strings.TrimRight(req.URL.RawPath, "/")
			}
		}
		next.ServeHTTP(w, req)
	})
}
