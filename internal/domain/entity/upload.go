package entity

// FileRef is a platform-local reference to a file picked by the user,
// such as file:///tmp/photo.jpg, a bare path, or an http(s) URL.
type FileRef string

// FilePayload is a resolved file ready to be sent as a multipart part.
type FilePayload struct {
	Name        string
	ContentType string
	Data        []byte
}
