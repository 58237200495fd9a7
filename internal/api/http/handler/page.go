package handler

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
)

var addUserPage = template.Must(template.New("adduser").Parse(`<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>TradeHub: Add user</title>
</head>
<body>
  <main>
    <h1>TradeHub</h1>
    <form method="post" action="/adduser">
      <label>Name <input type="text" name="name" required></label>
      <label>Email <input type="email" name="email" required></label>
      <label>Password <input type="password" name="password" required></label>
      <label>Confirm password <input type="password" name="passwordConfirm" required></label>
      <button type="submit">Add user</button>
    </form>
  </main>
</body>
</html>
`))

// Page serves the static page shells.
type Page struct{}

// NewPage creates a new Page handler.
func NewPage() *Page {
	return &Page{}
}

// AddUser renders the add-user page shell.
func (h *Page) AddUser(c *gin.Context) {
	c.Status(http.StatusOK)
	c.Header("Content-Type", "text/html; charset=utf-8")
	_ = addUserPage.Execute(c.Writer, nil)
}
