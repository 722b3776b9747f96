package bolt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	blogify "github.com/Naitik-Lodhi/Blogify-project"
)

func TestUserRepository(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	repo := &UserRepository{Driver: driver}

	user := blogify.User{
		ID:        "u1",
		Name:      "Ada",
		Email:     "ada@example.com",
		Password:  "secret",
		Role:      "user",
		CreatedAt: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, repo.Insert(&user))

	retrieved, err := repo.Get("u1")
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, user, *retrieved)

	retrieved, err = repo.GetByEmail("ada@example.com")
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, "u1", retrieved.ID)

	// Email lookup is exact and case-sensitive.
	retrieved, err = repo.GetByEmail("Ada@example.com")
	require.NoError(t, err)
	assert.Nil(t, retrieved)
}

func TestSessionRepository(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	repo := &SessionRepository{Driver: driver}

	user, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, user)

	require.NoError(t, repo.Set(&blogify.User{ID: "u1", Name: "Ada"}))
	user, err = repo.Get()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "u1", user.ID)

	require.NoError(t, repo.Clear())
	user, err = repo.Get()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestSessionRepository_MalformedReadsAsLoggedOut(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	repo := &SessionRepository{Driver: driver}

	require.NoError(t, driver.Put("loggedInUser", []byte("][")))
	user, err := repo.Get()
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestFavoriteRepository(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	repo := &FavoriteRepository{Driver: driver}

	ids, err := repo.List("u1")
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, repo.Save("u1", []string{"b1", "b2"}))
	require.NoError(t, repo.Save("u2", []string{"b3"}))

	ids, err = repo.List("u1")
	require.NoError(t, err)
	assert.Equal(t, []string{"b1", "b2"}, ids)

	// Sets are scoped per user.
	ids, err = repo.List("u2")
	require.NoError(t, err)
	assert.Equal(t, []string{"b3"}, ids)
}

func TestPreferencesRepository(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	repo := &PreferencesRepository{Driver: driver}

	prefs, err := repo.Get()
	require.NoError(t, err)
	assert.Equal(t, blogify.ThemeLight, prefs.Theme)
	assert.Equal(t, blogify.ViewGrid, prefs.View)
	assert.False(t, prefs.HideIntro)

	prefs.Theme = blogify.ThemeDark
	prefs.View = blogify.ViewList
	prefs.HideIntro = true
	require.NoError(t, repo.Save(prefs))

	prefs, err = repo.Get()
	require.NoError(t, err)
	assert.Equal(t, blogify.ThemeDark, prefs.Theme)
	assert.Equal(t, blogify.ViewList, prefs.View)
	assert.True(t, prefs.HideIntro)
}

func TestMetaRepository(t *testing.T) {
	driver, f := createDriver(t)
	defer f()
	repo := &MetaRepository{Driver: driver}

	added, err := repo.UserAddedBlogs()
	require.NoError(t, err)
	assert.False(t, added)

	require.NoError(t, repo.SetUserAddedBlogs())
	added, err = repo.UserAddedBlogs()
	require.NoError(t, err)
	assert.True(t, added)
}
