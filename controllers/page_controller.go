// file: controllers/page_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/vedantwankhade123/Roborace/content"
	"github.com/vedantwankhade123/Roborace/utils"
)

func pageData(extra gin.H) gin.H {
	data := gin.H{
		"EventName": content.EventName,
		"Tagline":   content.Tagline,
		"Venue":     content.Venue,
		"Organizer": content.Organizer,
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func HomePage(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", pageData(gin.H{
		"Prizes":   content.Prizes,
		"Schedule": content.Schedule,
	}))
}

func RulesPage(c *gin.Context) {
	c.HTML(http.StatusOK, "rules.html", pageData(gin.H{
		"RuleCategories": content.Rules,
	}))
}

// RegistrationPage renders the entry form. Each render embeds a fresh
// idempotency key, so resubmitting the same form after a transient failure
// resolves to the record the first attempt created.
func RegistrationPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", pageData(gin.H{
		"Departments":    content.Departments,
		"IdempotencyKey": utils.GenerateIdempotencyKey(),
	}))
}

func ContactPage(c *gin.Context) {
	c.HTML(http.StatusOK, "contact.html", pageData(gin.H{
		"Coordinators": content.Coordinators,
	}))
}

func AdminLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_login.html", pageData(nil))
}

// AdminDashboardPage serves the dashboard shell; data loading and the live
// feed run over the JSON/SSE endpoints with the admin's token.
func AdminDashboardPage(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_dashboard.html", pageData(nil))
}
