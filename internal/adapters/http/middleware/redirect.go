package middleware

import (
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// HTTPSRedirect answers every request with 307 to the same URL on the
// HTTPS port. It is the only handler of the plaintext listener.
func HTTPSRedirect(httpsPort int) gin.HandlerFunc {
	port := strconv.Itoa(httpsPort)

	return func(c *gin.Context) {
		host := c.Request.Host
		if h, _, err := net.SplitHostPort(host); err == nil {
			host = h
		} else {
			host = strings.TrimSuffix(strings.TrimPrefix(host, "["), "]")
		}

		authority := net.JoinHostPort(host, port)
		if httpsPort == 443 {
			authority = strings.TrimSuffix(authority, ":443")
		}

		target := "https://" + authority + c.Request.URL.RequestURI()

		c.Redirect(http.StatusTemporaryRedirect, target)
		c.Abort()
	}
}
