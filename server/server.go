package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/svillors/star-burger/app/catalog"
	"github.com/svillors/star-burger/app/orders"
	"github.com/svillors/star-burger/app/restaurateur"
	"github.com/svillors/star-burger/middlewares"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

type Handlers struct {
	Catalog      *catalog.CatalogHandler
	Orders       *orders.OrderHandler
	Restaurateur *restaurateur.Handler
}

func SetupRoutes(h Handlers) *Server {
	router := mux.NewRouter()
	router.Use(middlewares.RequestID, middlewares.Logging)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, `{"alive": true}`)
	}).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products/", h.Catalog.HandleGetProducts).Methods("GET")
	api.HandleFunc("/banners/", h.Catalog.HandleGetBanners).Methods("GET")
	api.HandleFunc("/order/", h.Orders.HandleCreate).Methods("POST")

	staff := api.PathPrefix("/restaurateur").Subrouter()
	staff.HandleFunc("/orders/", h.Restaurateur.HandleGetOrders).Methods("GET")
	staff.HandleFunc("/products/", h.Restaurateur.HandleGetProducts).Methods("GET")
	staff.HandleFunc("/places/", h.Restaurateur.HandleInvalidatePlace).Methods("DELETE")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(addr string) error {
	svr.server = &http.Server{
		Addr:              addr,
		Handler:           cors.Default().Handler(svr.Router),
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
