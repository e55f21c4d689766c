package post

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/MrSunstrike/Social-network-Yatube/internal/database"
)

func setupMockDB(t *testing.T) sqlmock.Sqlmock {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	dialector := postgres.New(postgres.Config{
		Conn:                 mockDB,
		DriverName:           "postgres",
		PreferSimpleProtocol: true,
	})

	db, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	originalDB := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = originalDB })

	return mock
}

func commentRequest(t *testing.T, postID, userID, text string) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	form := url.Values{"text": {text}}
	req := httptest.NewRequest(http.MethodPost, "/posts/"+postID+"/comment", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: postID}}
	c.Set("user_id", userID)

	return w, c
}

func postRow() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "created_at", "text", "author_id", "group_id", "image_url"}).
		AddRow("p1", time.Now(), "a post", "author1", nil, "")
}

func TestAddComment(t *testing.T) {
	t.Run("valid comment redirects to detail", func(t *testing.T) {
		mock := setupMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "posts"`).WillReturnRows(postRow())
		mock.ExpectBegin()
		mock.ExpectExec(`INSERT INTO "comments"`).WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		w, c := commentRequest(t, "p1", "u1", "nice post")
		AddComment(c)
		// Handler is invoked directly (no engine), so flush gin's buffered
		// status; the router normally does this after c.Next().
		c.Writer.WriteHeaderNow()

		assert.Equal(t, http.StatusFound, w.Code)
		assert.Equal(t, "/posts/p1", w.Header().Get("Location"))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("blank text is a validation error and writes nothing", func(t *testing.T) {
		mock := setupMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "posts"`).WillReturnRows(postRow())

		w, c := commentRequest(t, "p1", "u1", "   ")
		AddComment(c)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "comment text must not be empty")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown post is a 404", func(t *testing.T) {
		mock := setupMockDB(t)

		mock.ExpectQuery(`SELECT \* FROM "posts"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "text", "author_id", "group_id", "image_url"}))

		w, c := commentRequest(t, "missing", "u1", "hello")
		AddComment(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRemoveCommentNonAuthorIsSilentlyRedirected(t *testing.T) {
	mock := setupMockDB(t)

	mock.ExpectQuery(`SELECT \* FROM "comments"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "post_id", "author_id", "text", "created_at"}).
			AddRow("c1", "p1", "author1", "their comment", time.Now()))

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/comments/c1/delete", nil)
	c.Params = gin.Params{{Key: "id", Value: "c1"}}
	c.Set("user_id", "someone-else")

	RemoveComment(c)
	// Handler is invoked directly (no engine), so flush gin's buffered
	// status; the router normally does this after c.Next().
	c.Writer.WriteHeaderNow()

	// No DELETE expected: the non-author's request must not touch the store.
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/posts/p1", w.Header().Get("Location"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
