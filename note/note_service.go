package note

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sandoapp/finance_service/finance_core"
	"github.com/sandoapp/finance_service/finance_model"
)

// Notes require an authenticated caller but are not owner-scoped.
type noteServiceImpl struct {
	db   *gorm.DB
	auth finance_core.Authorization
}

func NewNoteService(db *gorm.DB, auth finance_core.Authorization) *noteServiceImpl {
	return &noteServiceImpl{
		db:   db,
		auth: auth,
	}
}

func (n *noteServiceImpl) Register(rg *gin.RouterGroup) {
	rg.GET("", n.NoteList)
	rg.GET("/:note_id", n.NoteGet)
	rg.POST("", n.NoteCreate)
	rg.PUT("/:note_id", n.NoteUpdate)
	rg.DELETE("/:note_id", n.NoteDelete)
}

type notePayload struct {
	Title   string `json:"title" binding:"required,max=64"`
	Content string `json:"content"`
}

func (n *noteServiceImpl) NoteCreate(c *gin.Context) {
	identity := n.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	var pay notePayload
	if err := c.ShouldBindJSON(&pay); err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed(err.Error()))
		return
	}

	note := finance_model.Note{
		Title:   pay.Title,
		Content: pay.Content,
	}
	err := n.db.
		WithContext(c.Request.Context()).
		Create(&note).Error
	if err != nil {
		finance_core.AbortWithError(c, finance_core.CreateFailed(map[string]any{"title": pay.Title}))
		return
	}

	c.JSON(http.StatusOK, &note)
}

func (n *noteServiceImpl) NoteList(c *gin.Context) {
	identity := n.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	items := []*finance_model.Note{}
	err := n.db.
		WithContext(c.Request.Context()).
		Order("id desc").
		Find(&items).Error
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, items)
}

func (n *noteServiceImpl) NoteGet(c *gin.Context) {
	identity := n.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	id, err := strconv.Atoi(c.Param("note_id"))
	if err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed("note_id must be an integer"))
		return
	}

	var note finance_model.Note
	err = n.db.
		WithContext(c.Request.Context()).
		Where("id = ?", id).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"note_id": id}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, &note)
}

func (n *noteServiceImpl) NoteUpdate(c *gin.Context) {
	identity := n.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	id, err := strconv.Atoi(c.Param("note_id"))
	if err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed("note_id must be an integer"))
		return
	}

	var pay notePayload
	if err := c.ShouldBindJSON(&pay); err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed(err.Error()))
		return
	}

	db := n.db.WithContext(c.Request.Context())

	var note finance_model.Note
	err = db.
		Where("id = ?", id).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"note_id": id}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	note.Title = pay.Title
	note.Content = pay.Content
	if err := db.Save(&note).Error; err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, &note)
}

func (n *noteServiceImpl) NoteDelete(c *gin.Context) {
	identity := n.auth.AuthIdentityFromHeader(c.Request.Header)
	if err := identity.Err(); err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	id, err := strconv.Atoi(c.Param("note_id"))
	if err != nil {
		finance_core.AbortWithError(c, finance_core.ValidationFailed("note_id must be an integer"))
		return
	}

	db := n.db.WithContext(c.Request.Context())

	var note finance_model.Note
	err = db.
		Where("id = ?", id).
		First(&note).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		finance_core.AbortWithError(c, finance_core.NotFound(map[string]any{"note_id": id}))
		return
	}
	if err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	if err := db.Delete(&note).Error; err != nil {
		finance_core.AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}
