package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/dmitrijs2005/ordertrack/internal/server/models"
	"github.com/gorilla/mux"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type registerResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

type createOrderRequest struct {
	ProductName string  `json:"product_name"`
	Quantity    int32   `json:"quantity"`
	Price       float64 `json:"price"`
}

type updateOrderRequest struct {
	ProductName *string  `json:"product_name"`
	Quantity    *int32   `json:"quantity"`
	Price       *float64 `json:"price"`
}

type orderResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	ProductName string    `json:"product_name"`
	Quantity    int32     `json:"quantity"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toOrderResponse(o *models.Order) orderResponse {
	return orderResponse{
		ID:          o.ID,
		UserID:      o.UserID,
		ProductName: o.ProductName,
		Quantity:    o.Quantity,
		Price:       o.Price,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (s *Server) Ping(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, statusResponse{Status: "OK"})
}

func (s *Server) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !s.decode(w, r, &req) {
		return
	}

	user, err := s.users.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, registerResponse{ID: user.ID, Username: user.UserName})
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !s.decode(w, r, &req) {
		return
	}

	token, user, err := s.users.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, loginResponse{Token: token, Username: user.UserName})
}

func (s *Server) CreateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req createOrderRequest
	if !s.decode(w, r, &req) {
		return
	}

	order, err := s.orders.Create(r.Context(), userID, req.ProductName, req.Quantity, req.Price)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, toOrderResponse(order))
}

func (s *Server) ListOrders(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orders, err := s.orders.List(r.Context(), userID)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	resp := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		resp = append(resp, toOrderResponse(o))
	}

	s.writeJSON(w, http.StatusOK, resp)
}

func (s *Server) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req updateOrderRequest
	if !s.decode(w, r, &req) {
		return
	}

	patch := &models.OrderPatch{
		ProductName: req.ProductName,
		Quantity:    req.Quantity,
		Price:       req.Price,
	}

	order, err := s.orders.Update(r.Context(), userID, mux.Vars(r)["id"], patch)
	if err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, toOrderResponse(order))
}

func (s *Server) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	userID, ok := UserIDFromContext(r.Context())
	if !ok {
		s.writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := s.orders.Delete(r.Context(), userID, mux.Vars(r)["id"]); err != nil {
		s.writeServiceError(r.Context(), w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, statusResponse{Status: "deleted"})
}
