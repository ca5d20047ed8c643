package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"gulshan-laundry/laundry-svc/internal/domain"
	"gulshan-laundry/laundry-svc/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Packages service.PackageServiceInterface
	Orders   service.OrderServiceInterface
	Auth     service.AuthServiceInterface
	Chat     service.ChatServiceInterface
}

func NewHandler(pkgSvc service.PackageServiceInterface, orderSvc service.OrderServiceInterface, authSvc service.AuthServiceInterface, chatSvc service.ChatServiceInterface) *Handler {
	return &Handler{
		Packages: pkgSvc,
		Orders:   orderSvc,
		Auth:     authSvc,
		Chat:     chatSvc,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/packages", h.getPackages).Methods("GET")
	r.HandleFunc("/api/packages", h.requireAdmin(h.createPackage)).Methods("POST")
	r.HandleFunc("/api/packages/{id}", h.requireAdmin(h.updatePackage)).Methods("PUT")

	r.HandleFunc("/api/orders", h.requireAdmin(h.getOrders)).Methods("GET")
	r.HandleFunc("/api/orders", h.createOrder).Methods("POST")
	r.HandleFunc("/api/orders/stats", h.requireAdmin(h.getOrderStats)).Methods("GET")
	r.HandleFunc("/api/orders/{id}", h.getOrder).Methods("GET")
	r.HandleFunc("/api/orders/{id}/status", h.requireAdmin(h.updateOrderStatus)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.HandleFunc("/api/admin/login", h.adminLogin).Methods("POST")
	r.HandleFunc("/api/admin/verify", h.adminVerify).Methods("GET")
	r.HandleFunc("/api/admin/logout", h.requireAdmin(h.adminLogout)).Methods("POST")

	r.HandleFunc("/api/chat/messages", h.getMessages).Methods("GET")
	r.HandleFunc("/api/chat/messages", h.sendMessage).Methods("POST")
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{"success": false, "message": message})
}

func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if !strings.HasPrefix(auth, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(auth, "Bearer ")
}

func (h *Handler) requireAdmin(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, err := h.Auth.Verify(r.Context(), bearerToken(r)); err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next(w, r)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "laundry-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) getPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.Packages.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if packages == nil {
		packages = []domain.Package{}
	}
	writeJSON(w, http.StatusOK, packages)
}

func (h *Handler) createPackage(w http.ResponseWriter, r *http.Request) {
	var pkg domain.Package
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Packages.Create(&pkg); err != nil {
		if errors.Is(err, service.ErrInvalidPackage) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, pkg)
}

func (h *Handler) updatePackage(w http.ResponseWriter, r *http.Request) {
	var pkg domain.Package
	if err := json.NewDecoder(r.Body).Decode(&pkg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	pkg.ID = mux.Vars(r)["id"]
	if err := h.Packages.Update(&pkg); err != nil {
		if err.Error() == "sql: no rows in result set" {
			writeError(w, http.StatusNotFound, "Package not found")
			return
		}
		if errors.Is(err, service.ErrInvalidPackage) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, pkg)
}

func (h *Handler) getOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON format: "+err.Error())
		return
	}
	if err := h.Orders.Create(&order); err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	order.QRCode = h.Orders.QRLink(order.ID)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Order submitted successfully",
		"data":    order,
	})
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.Orders.Get(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	writeJSON(w, http.StatusOK, order)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Orders.UpdateStatus(id, payload.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrOrderNotFound):
			writeError(w, http.StatusNotFound, "Order not found")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Order " + id + " status updated to " + payload.Status,
	})
}

func (h *Handler) getOrderStats(w http.ResponseWriter, r *http.Request) {
	counts, err := h.Orders.StatusCounts()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, counts)
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	qrCode, err := h.Orders.GetQRCode(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusNotFound, "Order not found")
		return
	}
	if len(qrCode) == 0 {
		writeError(w, http.StatusNotFound, "QR code not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	var creds struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	session, err := h.Auth.Login(r.Context(), creds.Email, creds.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    session,
	})
}

func (h *Handler) adminVerify(w http.ResponseWriter, r *http.Request) {
	user, err := h.Auth.Verify(r.Context(), bearerToken(r))
	if err != nil {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"valid": false},
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    map[string]interface{}{"valid": true, "user": user},
	})
}

func (h *Handler) adminLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.Auth.Logout(r.Context(), bearerToken(r)); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"success": true})
}

func (h *Handler) getMessages(w http.ResponseWriter, r *http.Request) {
	messages, err := h.Chat.List()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if messages == nil {
		messages = []domain.ChatMessage{}
	}
	writeJSON(w, http.StatusOK, messages)
}

func (h *Handler) sendMessage(w http.ResponseWriter, r *http.Request) {
	var msg domain.ChatMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.Chat.Send(r.Context(), &msg); err != nil {
		if errors.Is(err, service.ErrEmptyMessage) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "Message sent",
		"data":    msg,
	})
}
