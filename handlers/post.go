package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"postboard/database"
	"postboard/middleware"
	"postboard/models"
)

// maxPostBytes caps the UTF-8 encoded length of a post's text.
const maxPostBytes = 1_000_000

type AddPostRequest struct {
	Text string `json:"text" binding:"required"`
}

// AddPost stores a new post owned by the authenticated user. Text up to and
// including maxPostBytes is accepted; anything longer is rejected with 413.
func AddPost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req AddPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if len(req.Text) > maxPostBytes {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Payload too large"})
		return
	}

	post := models.Post{
		Text:   req.Text,
		UserID: user.ID,
	}

	if err := database.DB.Create(&post).Error; err != nil {
		log.Printf("AddPost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	postCache.Invalidate(user.ID)

	c.JSON(http.StatusCreated, post)
}

// GetPosts returns every post owned by the authenticated user, in insertion
// order. Results are served from the response cache while fresh.
func GetPosts(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	if posts, ok := postCache.Get(user.ID); ok {
		c.JSON(http.StatusOK, posts)
		return
	}

	var posts []models.Post
	if err := database.DB.Where("user_id = ?", user.ID).Order("id").Find(&posts).Error; err != nil {
		log.Printf("GetPosts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}
	if posts == nil {
		posts = []models.Post{}
	}

	postCache.Put(user.ID, posts)

	c.JSON(http.StatusOK, posts)
}

// DeletePost removes a post by id if the authenticated user owns it. A post
// owned by someone else is reported exactly like a missing one, so ids held
// by other users cannot be probed.
func DeletePost(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	var post models.Post
	err = database.DB.Where("id = ? AND user_id = ?", postID, user.ID).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if err := database.DB.Delete(&post).Error; err != nil {
		log.Printf("DeletePost error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	postCache.Invalidate(user.ID)

	c.JSON(http.StatusOK, gin.H{"detail": "Post deleted"})
}
