package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Jakeb65/WelnessTracker/models"
	"github.com/Jakeb65/WelnessTracker/services"

	"github.com/gin-gonic/gin"
)

type EntryController struct {
	Svc *services.EntryService
}

func NewEntryController(svc *services.EntryService) *EntryController {
	return &EntryController{Svc: svc}
}

// GET /entries
func (h *EntryController) ListEntries(c *gin.Context) {
	entries, err := h.Svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// GET /entries/:id
func (h *EntryController) GetEntry(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}
	entry, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// POST /entries
func (h *EntryController) CreateEntry(c *gin.Context) {
	var in models.EntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// PUT /entries/:id
//
// Update replaces the stored entry: omitted fields revert to their
// defaults instead of keeping prior values. Only date is preserved when
// the payload leaves it out.
func (h *EntryController) UpdateEntry(c *gin.Context) {
	id, ok := entryID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
		return
	}
	var in models.EntryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entry, err := h.Svc.Update(c.Request.Context(), id, in)
	if err != nil {
		if errors.Is(err, services.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DELETE /entries/:id
//
// Delete is idempotent and always acknowledges success, whether or not
// a row existed.
func (h *EntryController) DeleteEntry(c *gin.Context) {
	id, ok := entryID(c)
	if ok {
		if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

// entryID parses the :id path param. A non-numeric id matches no row,
// which callers treat the same as a missing one.
func entryID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
