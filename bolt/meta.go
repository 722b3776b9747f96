package bolt

const userAddedBlogsKey = "hasUserAddedBlogs"

// MetaRepository holds the bookkeeping flags that are neither content nor
// preferences.
type MetaRepository struct {
	Driver *Driver
}

// UserAddedBlogs reports whether a user has ever created a blog on this
// profile. Seeding does not set the flag.
func (r *MetaRepository) UserAddedBlogs() (bool, error) {
	data, err := r.Driver.Get(userAddedBlogsKey)
	if err != nil {
		return false, err
	}
	return string(data) == "true", nil
}

func (r *MetaRepository) SetUserAddedBlogs() error {
	return r.Driver.Put(userAddedBlogsKey, []byte("true"))
}
