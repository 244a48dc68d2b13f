package media

import "time"

// Item is the metadata record for one uploaded file. The store owns the
// record; section documents only reference media by path, with no
// referential integrity back to items.
type Item struct {
	ID       string    `json:"id" bson:"id"`
	Name     string    `json:"name" bson:"name"`
	Path     string    `json:"path" bson:"path"`
	APIURL   string    `json:"apiUrl,omitempty" bson:"apiUrl,omitempty"`
	Type     string    `json:"type" bson:"type"`
	Size     string    `json:"size" bson:"size"`
	Uploaded time.Time `json:"uploaded" bson:"uploaded"`
	// Warning is set on upload responses whose metadata insert failed after
	// the file was already stored. Never persisted.
	Warning bool `json:"warning,omitempty" bson:"-"`
}
