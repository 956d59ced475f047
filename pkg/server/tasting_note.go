package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"droscher.com/BrewLog/pkg/repository"
	"droscher.com/BrewLog/pkg/server/api"
)

const tastingNoteEntity = "テイスティングノート"

type TastingNoteServer struct {
	logger         *zap.Logger
	noteRepository repository.TastingNoteRepository
}

func NewTastingNoteServer(noteRepo repository.TastingNoteRepository, logger *zap.Logger) *TastingNoteServer {
	return &TastingNoteServer{noteRepository: noteRepo, logger: logger}
}

func (n *TastingNoteServer) Register(group *gin.RouterGroup) {
	group.GET("", n.ListTastingNotes)
	group.POST("", n.AddTastingNote)
	group.GET("/:id", n.GetTastingNote)
	group.PUT("/:id", n.UpdateTastingNote)
	group.DELETE("/:id", n.DeleteTastingNote)
}

func (n *TastingNoteServer) ListTastingNotes(c *gin.Context) {
	tastingID, err := queryID(c, "tastingEntryId")
	if err != nil {
		respondError(c, n.logger, tastingNoteEntity, err)

		return
	}

	notes, err := n.noteRepository.ListTastingNotes(c.Request.Context(), tastingID)
	if err != nil {
		respondError(c, n.logger, tastingNoteEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.TastingNotesFromModel(notes))
}

func (n *TastingNoteServer) GetTastingNote(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, n.logger, tastingNoteEntity, err)

		return
	}

	note, err := n.noteRepository.GetTastingNoteByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, n.logger, tastingNoteEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.TastingNoteFromModel(note))
}

func (n *TastingNoteServer) AddTastingNote(c *gin.Context) {
	var request api.CreateTastingNoteRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, n.logger, tastingNoteEntity, err)

		return
	}

	note, err := n.noteRepository.AddTastingNote(c.Request.Context(), request.ToModel())
	if err != nil {
		respondError(c, n.logger, tastingNoteEntity, err)

		return
	}

	c.JSON(http.StatusCreated, api.TastingNoteFromModel(note))
}

func (n *TastingNoteServer) UpdateTastingNote(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, n.logger, tastingNoteEntity, err)

		return
	}

	var request api.UpdateTastingNoteRequest
	if err := bindJSON(c, &request); err != nil {
		respondError(c, n.logger, tastingNoteEntity, err)

		return
	}

	note, err := n.noteRepository.GetTastingNoteByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, n.logger, tastingNoteEntity, err)

		return
	}

	request.ApplyTo(note)

	updated, err := n.noteRepository.UpdateTastingNote(c.Request.Context(), note)
	if err != nil {
		respondError(c, n.logger, tastingNoteEntity, err)

		return
	}

	c.JSON(http.StatusOK, api.TastingNoteFromModel(updated))
}

func (n *TastingNoteServer) DeleteTastingNote(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		respondError(c, n.logger, tastingNoteEntity, err)

		return
	}

	if err := n.noteRepository.DeleteTastingNote(c.Request.Context(), id); err != nil {
		respondError(c, n.logger, tastingNoteEntity, err)

		return
	}

	c.Status(http.StatusNoContent)
}
