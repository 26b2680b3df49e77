// file: controllers/admin_registration_controller.go
package controllers

import (
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vedantwankhade123/Roborace/database"
	"github.com/vedantwankhade123/Roborace/dto"
	"github.com/vedantwankhade123/Roborace/models"
	"github.com/vedantwankhade123/Roborace/services"
	"github.com/vedantwankhade123/Roborace/utils"
	"gorm.io/gorm"
)

// loadFeedSnapshot materializes the full collection newest-first. The feed is
// small enough that the dashboard always works on the whole set; filtering
// happens in memory so list and export views share one predicate.
func loadFeedSnapshot() ([]models.Registration, error) {
	var regs []models.Registration
	err := database.DB.Order("submitted_at desc, id desc").Find(&regs).Error
	return regs, err
}

// AdminGetRegistrations returns the filtered feed plus the stats panel counts.
func AdminGetRegistrations(c *gin.Context) {
	search := c.Query("search")
	status := c.DefaultQuery("status", services.StatusFilterAll)

	regs, err := loadFeedSnapshot()
	if err != nil {
		utils.Error(c, 5000, "Failed to load registrations: "+err.Error())
		return
	}

	filtered := services.FilterRegistrations(regs, search, status)

	utils.Success(c, "success", gin.H{
		"total":         len(filtered),
		"registrations": filtered,
		"stats":         services.CountByStatus(regs),
	})
}

func AdminUpdateRegistrationStatus(c *gin.Context) {
	regID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid registration ID")
		return
	}

	var req dto.UpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, 1001, "Invalid status value")
		return
	}

	var registration models.Registration
	if err := database.DB.First(&registration, regID).Error; err != nil {
		utils.Error(c, 4004, "Registration not found")
		return
	}

	if err := database.DB.Model(&registration).Update("status", req.Status).Error; err != nil {
		utils.Error(c, 5000, "Failed to update registration status")
		return
	}

	registration.Status = models.RegistrationStatus(req.Status)
	services.PublishFeedEvent(services.FeedEvent{
		Type:           services.FeedEventStatusChanged,
		RegistrationID: registration.ID,
		Registration:   &registration,
	})

	utils.Success(c, "Registration status updated", gin.H{
		"registration_id": registration.ID,
		"status":          req.Status,
	})
}

func AdminDeleteRegistration(c *gin.Context) {
	regID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.Error(c, 1002, "Invalid registration ID")
		return
	}

	var registration models.Registration
	if err := database.DB.First(&registration, regID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Already gone, likely deleted by another admin. Report success.
			utils.Success(c, "Registration deleted successfully", nil)
			return
		}
		utils.Error(c, 5000, "Failed to delete registration")
		return
	}

	if err := database.DB.Delete(&registration).Error; err != nil {
		utils.Error(c, 5000, "Failed to delete registration")
		return
	}

	services.PublishFeedEvent(services.FeedEvent{
		Type:           services.FeedEventDeleted,
		RegistrationID: registration.ID,
	})

	utils.Success(c, "Registration deleted successfully", nil)
}

// StreamRegistrations pushes feed mutations to the dashboard over SSE. The
// stream ends when the client disconnects; reconnection is the browser's
// EventSource default behavior.
func StreamRegistrations(c *gin.Context) {
	pubsub := services.SubscribeFeed()
	defer pubsub.Close()

	ch := pubsub.Channel()
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Stream(func(w io.Writer) bool {
		select {
		case msg, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent("registration", msg.Payload)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}

// --- Exports ---

func exportSnapshot(c *gin.Context) ([]models.Registration, bool) {
	regs, err := loadFeedSnapshot()
	if err != nil {
		utils.Error(c, 5000, "Failed to load registrations: "+err.Error())
		return nil, false
	}
	search := c.Query("search")
	status := c.DefaultQuery("status", services.StatusFilterAll)
	return services.FilterRegistrations(regs, search, status), true
}

func ExportRegistrationsCSV(c *gin.Context) {
	filtered, ok := exportSnapshot(c)
	if !ok {
		return
	}

	data, err := services.ExportCSV(filtered)
	if err != nil {
		utils.Error(c, 5000, "Failed to generate CSV export")
		return
	}

	filename := fmt.Sprintf("RoboRace_Report_%s.csv", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "text/csv; charset=utf-8", data)
}

func ExportRegistrationsPDF(c *gin.Context) {
	filtered, ok := exportSnapshot(c)
	if !ok {
		return
	}

	data, err := services.ExportPDF(filtered)
	if err != nil {
		utils.Error(c, 5000, "Failed to generate PDF export")
		return
	}

	filename := fmt.Sprintf("Report_%s.pdf", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(200, "application/pdf", data)
}

// --- Secret codes ---

// CreateSecretCode mints a signup code for onboarding another organiser.
func CreateSecretCode(c *gin.Context) {
	secretCode := models.SecretCode{
		Code: utils.GenerateSecretCode(8),
	}
	if err := database.DB.Create(&secretCode).Error; err != nil {
		utils.Error(c, 5000, "Failed to create secret code")
		return
	}

	log.Printf("Secret code %d minted by admin %q", secretCode.ID, c.GetString("admin_name"))

	utils.Success(c, "Secret code created", gin.H{
		"id":   secretCode.ID,
		"code": secretCode.Code,
	})
}
