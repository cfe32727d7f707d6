package handler

import (
	"net/http"

	"github.com/stevemurr/game-library/game"
)

type mutationResponse struct {
	Message string    `json:"message"`
	Index   int       `json:"index"`
	Game    game.Game `json:"game"`
}

type deleteResponse struct {
	Message   string    `json:"message"`
	Removed   game.Game `json:"removed"`
	Remaining int       `json:"remaining"`
}

// index resolves the {id} path value against the current collection length.
// Callers must hold h.mu.
func (h *Handler) index(r *http.Request) (int, error) {
	n, err := h.store.Len()
	if err != nil {
		return 0, err
	}
	return game.ParseIndex(r.PathValue("id"), n)
}

func (h *Handler) listGames(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	games, err := h.store.List()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, games)
}

func (h *Handler) filterGames(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	games, err := h.store.List()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	matched, err := game.FilterByGenre(games, r.URL.Query().Get("genre"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, matched)
}

func (h *Handler) getGame(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	i, err := h.index(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	g, err := h.store.Get(i)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request) {
	payload, err := readPayload(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	g, err := game.Validate(payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	i, err := h.store.Append(g)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.DebugContext(r.Context(), "game added", "index", i, "title", g.Title)
	writeJSON(w, http.StatusCreated, mutationResponse{
		Message: "Game added successfully",
		Index:   i,
		Game:    g,
	})
}

func (h *Handler) replaceGame(w http.ResponseWriter, r *http.Request) {
	// The body is read before locking; its errors are reported only after
	// the index resolves, so an unknown index is still a 404.
	var g game.Game
	payload, bodyErr := readPayload(r)
	if bodyErr == nil {
		g, bodyErr = game.Validate(payload)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	i, err := h.index(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if bodyErr != nil {
		h.fail(w, r, bodyErr)
		return
	}
	prev, err := h.store.ReplaceAt(i, g)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.DebugContext(r.Context(), "game updated", "index", i, "title", g.Title, "previous_title", prev.Title)
	writeJSON(w, http.StatusOK, mutationResponse{
		Message: "Game updated successfully",
		Index:   i,
		Game:    g,
	})
}

func (h *Handler) deleteGame(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	i, err := h.index(r)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	removed, err := h.store.RemoveAt(i)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	n, err := h.store.Len()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.logger.DebugContext(r.Context(), "game deleted", "index", i, "title", removed.Title, "remaining", n)
	writeJSON(w, http.StatusOK, deleteResponse{
		Message:   "Game deleted successfully",
		Removed:   removed,
		Remaining: n,
	})
}
