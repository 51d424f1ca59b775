// Package web implements the HTTP front end: POST /get_board,
// POST /get_valid_moves, POST /move, POST /restart. It is a thin JSON
// wrapper around pkg/engine -- net/http and encoding/json only, since no
// REST framework appears anywhere in the retrieved corpus (see DESIGN.md).
package web

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/chessblunder/blunder/pkg/board"
	"github.com/chessblunder/blunder/pkg/engine"
	"github.com/seekerror/logw"
)

// Handler serves the four engine endpoints against a single Engine. It is
// not safe for use by multiple concurrent games; Engine itself serializes
// access via its own mutex, but there is exactly one game per Handler.
type Handler struct {
	ctx context.Context
	e   *engine.Engine
}

// NewHandler returns a Handler and registers its routes on mux.
func NewHandler(ctx context.Context, e *engine.Engine, mux *http.ServeMux) *Handler {
	h := &Handler{ctx: ctx, e: e}

	mux.HandleFunc("/get_board", h.getBoard)
	mux.HandleFunc("/get_valid_moves", h.getValidMoves)
	mux.HandleFunc("/move", h.move)
	mux.HandleFunc("/restart", h.restart)

	return h
}

// boardResponse mirrors the board as an 8x8 array of one-letter piece codes
// (uppercase white, lowercase black, empty string for an empty square),
// indexed [y][x] with zero-based coordinates matching the request/response
// bodies of /move and /get_valid_moves.
type boardResponse struct {
	Squares     [8][8]string `json:"squares"`
	WhiteToMove bool         `json:"whiteToMove"`
	WhiteWon    bool         `json:"whiteWon"`
	BlackWon    bool         `json:"blackWon"`
}

func toBoardResponse(b *board.Board) boardResponse {
	var resp boardResponse
	resp.WhiteToMove = b.WhiteToMove
	resp.WhiteWon = b.WhiteWon
	resp.BlackWon = b.BlackWon

	for y := 0; y < board.Width; y++ {
		for x := 0; x < board.Width; x++ {
			c := b.At(board.NewSquare(board.File(x), board.Rank(y)))
			if c.Occupied() {
				resp.Squares[y][x] = string(c.Kind().Letter(c.White()))
			}
		}
	}
	return resp
}

func (h *Handler) getBoard(w http.ResponseWriter, r *http.Request) {
	b := h.e.Board()
	writeJSON(w, http.StatusOK, toBoardResponse(&b))
}

type validMovesRequest struct {
	OriginX int `json:"originX"`
	OriginY int `json:"originY"`
}

type candidateMove struct {
	DestinationX       int  `json:"destinationX"`
	DestinationY       int  `json:"destinationY"`
	IsPromotion        bool `json:"isPromotion"`
	IsPromotionToQueen bool `json:"isPromotionToQueen,omitempty"`
}

type validMovesResponse struct {
	Moves []candidateMove `json:"moves"`
}

func (h *Handler) getValidMoves(w http.ResponseWriter, r *http.Request) {
	var req validMovesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	origin := board.NewSquare(board.File(req.OriginX), board.Rank(req.OriginY))
	if !origin.IsValid() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid origin: %v", req))
		return
	}

	b := h.e.Board()
	var resp validMovesResponse
	for _, m := range board.GenerateAll(&b) {
		if m.From != origin {
			continue
		}
		resp.Moves = append(resp.Moves, candidateMove{
			DestinationX:       int(m.To.File),
			DestinationY:       int(m.To.Rank),
			IsPromotion:        m.IsPromotion,
			IsPromotionToQueen: m.PromoteToQueen,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

type moveRequest struct {
	OriginX            int  `json:"originX"`
	OriginY            int  `json:"originY"`
	DestinationX       int  `json:"destinationX"`
	DestinationY       int  `json:"destinationY"`
	IsPromotion        bool `json:"isPromotion"`
	IsPromotionToQueen bool `json:"isPromotionToQueen,omitempty"`
}

func (h *Handler) move(w http.ResponseWriter, r *http.Request) {
	var req moveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	origin := board.NewSquare(board.File(req.OriginX), board.Rank(req.OriginY))
	dest := board.NewSquare(board.File(req.DestinationX), board.Rank(req.DestinationY))
	text := origin.String() + dest.String()
	if req.IsPromotion {
		if req.IsPromotionToQueen {
			text += "q"
		} else {
			text += "n"
		}
	}

	if err := h.e.Move(h.ctx, text); err != nil {
		if errors.Is(err, engine.ErrInvalidMove) {
			writeError(w, http.StatusBadRequest, err)
		} else {
			writeError(w, http.StatusInternalServerError, err)
		}
		return
	}

	b := h.e.Board()
	writeJSON(w, http.StatusOK, toBoardResponse(&b))
}

func (h *Handler) restart(w http.ResponseWriter, r *http.Request) {
	if err := h.e.Reset(h.ctx, startingPosition); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	b := h.e.Board()
	writeJSON(w, http.StatusOK, toBoardResponse(&b))
}

const startingPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logw.Errorf(context.Background(), "Failed to encode response: %v", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}
