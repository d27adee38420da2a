package controllers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"camerahive/utils"

	"github.com/gin-gonic/gin"
)

type contactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required"`
}

// SendContactMessage relays a contact-form submission to the store inbox.
func SendContactMessage(ctx *gin.Context) {
	var input contactInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	contactEmail := os.Getenv("CONTACT_EMAIL")
	if contactEmail == "" {
		sendErrorResponse(ctx, http.StatusInternalServerError, "Missing contact configuration")
		return
	}

	emailData := utils.EmailData{
		Name:    input.Name,
		Email:   input.Email,
		Message: input.Message,
		LogoURL: os.Getenv("LOGO_URL"),
	}

	templatePath := filepath.Join("templates", "contact_email.html")
	if err := utils.SendEmail(contactEmail, "CameraHive Contact Message", emailData, templatePath); err != nil {
		log.Println("Error sending contact email:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to send your message. Try again later.")
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Message sent. We will get back to you soon."})
}
