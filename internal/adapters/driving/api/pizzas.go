package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/custodia-labs/pizza-hunt/internal/core/domain"
	"github.com/custodia-labs/pizza-hunt/internal/core/ports/driving"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

type pizzaHandler struct {
	pizzas driving.PizzaService
}

func (h *pizzaHandler) routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Put("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func (h *pizzaHandler) list(w http.ResponseWriter, r *http.Request) {
	pizzas, err := h.pizzas.List(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pizzas)
}

func (h *pizzaHandler) get(w http.ResponseWriter, r *http.Request) {
	pizza, err := h.pizzas.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pizza)
}

// create accepts either one pizza object or an array of them. An array is
// created as a single batch and answered with an array.
func (h *pizzaHandler) create(w http.ResponseWriter, r *http.Request) {
	body, err := readBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if isArray(body) {
		var in []domain.PizzaInput
		if err := json.Unmarshal(body, &in); err != nil {
			writeError(w, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err))
			return
		}
		created, err := h.pizzas.CreateBatch(r.Context(), in)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, created)
		return
	}

	var in domain.PizzaInput
	if err := json.Unmarshal(body, &in); err != nil {
		writeError(w, fmt.Errorf("%w: %w", domain.ErrInvalidInput, err))
		return
	}
	pizza, err := h.pizzas.Create(r.Context(), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pizza)
}

func (h *pizzaHandler) update(w http.ResponseWriter, r *http.Request) {
	var in domain.PizzaInput
	if err := decodeBody(r, &in); err != nil {
		writeError(w, err)
		return
	}
	pizza, err := h.pizzas.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pizza)
}

func (h *pizzaHandler) delete(w http.ResponseWriter, r *http.Request) {
	pizza, err := h.pizzas.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, pizza)
}

func readBody(r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %w", domain.ErrInvalidInput, err)
	}
	if len(body) > maxBodyBytes {
		return nil, fmt.Errorf("%w: body exceeds %d bytes", domain.ErrInvalidInput, maxBodyBytes)
	}
	return body, nil
}

func decodeBody(r *http.Request, v any) error {
	body, err := readBody(r)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrInvalidInput, err)
	}
	return nil
}

func isArray(body []byte) bool {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}
