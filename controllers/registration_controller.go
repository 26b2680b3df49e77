// file: controllers/registration_controller.go
package controllers

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/vedantwankhade123/Roborace/database"
	"github.com/vedantwankhade123/Roborace/dto"
	"github.com/vedantwankhade123/Roborace/models"
	"github.com/vedantwankhade123/Roborace/services"
	"github.com/vedantwankhade123/Roborace/utils"
	"gorm.io/gorm"
)

// --- Public endpoints ---

// SubmitRegistration handles the public entry form: validate, upload the
// payment receipt, then persist the record with status forced to pending.
func SubmitRegistration(c *gin.Context) {
	var req dto.SubmitRegistrationReq
	if err := c.ShouldBind(&req); err != nil {
		utils.Error(c, 1001, "All fields are required: "+err.Error())
		return
	}
	req.Normalize()

	file, err := c.FormFile("receipt")
	if err != nil {
		utils.Error(c, 1001, "Payment receipt is required")
		return
	}
	// Size ceiling is enforced before any network call is made.
	if file.Size > services.MaxReceiptSize {
		utils.Error(c, 1003, "Receipt image exceeds the 5MB limit")
		return
	}

	// A retry that carries the same idempotency key returns the record the
	// first attempt created, before paying for another upload.
	if req.IdempotencyKey != "" {
		var existing models.Registration
		err := database.DB.Where("idempotency_key = ?", req.IdempotencyKey).First(&existing).Error
		if err == nil {
			utils.Success(c, "Registration already received", gin.H{
				"id":     existing.ID,
				"status": existing.Status,
			})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Error(c, 5000, "Registration failed. Please try again.")
			return
		}
	}

	receiptURL, err := services.UploadReceipt(file)
	if err != nil {
		log.Printf("Receipt upload failed: %v", err)
		utils.Error(c, 5003, "Registration failed. Please try again.")
		return
	}

	registration := models.Registration{
		TeamName:    req.TeamName,
		LeaderName:  req.LeaderName,
		CollegeName: req.CollegeName,
		CityState:   req.CityState,
		Email:       req.Email,
		Phone:       req.Phone,
		Department:  req.Department,
		RobotSpecs:  req.RobotSpecs,
		ReceiptURL:  receiptURL,
		Status:      models.StatusPending,
		SubmittedAt: time.Now(),
	}
	if req.IdempotencyKey != "" {
		registration.IdempotencyKey = &req.IdempotencyKey
	}

	if err := database.DB.Create(&registration).Error; err != nil {
		// The uploaded receipt is orphaned here; unsigned Cloudinary uploads
		// cannot be deleted without signed credentials.
		log.Printf("Failed to persist registration (receipt %s orphaned): %v", receiptURL, err)
		utils.Error(c, 5000, "Registration failed. Please try again.")
		return
	}

	services.PublishFeedEvent(services.FeedEvent{
		Type:           services.FeedEventCreated,
		RegistrationID: registration.ID,
		Registration:   &registration,
	})

	utils.Success(c, "Registration submitted successfully", gin.H{
		"id":          registration.ID,
		"team_name":   registration.TeamName,
		"status":      registration.Status,
		"receipt_url": registration.ReceiptURL,
	})
}
