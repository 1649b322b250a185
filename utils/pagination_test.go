package utils

import (
	"math"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationFor(query string) *Pagination {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request, _ = http.NewRequest(http.MethodGet, "/admin/payments?"+query, nil)
	return NewPagination(c)
}

func TestNewPagination(t *testing.T) {
	p := paginationFor("")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPaginationLimit, p.Limit)
	assert.Equal(t, 0, p.Offset)

	p = paginationFor("page=3&limit=20")
	assert.Equal(t, 40, p.Offset)

	p = paginationFor("page=-2&limit=1000")
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxPaginationLimit, p.Limit)

	p.SetTotal(250)
	assert.Equal(t, 3, p.LastPage)
}

func TestNewPaginationHugePageDoesNotOverflow(t *testing.T) {
	p := paginationFor("page=" + strconv.Itoa(math.MaxInt) + "&limit=2")
	assert.Equal(t, 2, p.Limit)
	assert.GreaterOrEqual(t, p.Offset, 0)
	assert.Equal(t, (p.Page-1)*p.Limit, p.Offset)
}
