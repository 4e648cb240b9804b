package dataset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/Rorical/RoriSelect/internal/feed"
	"github.com/Rorical/RoriSelect/internal/option"
)

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate record key")
)

// Entry is one backing record as stored on disk.
type Entry struct {
	Key       string `yaml:"key"`
	Label     string `yaml:"label"`
	Secondary string `yaml:"secondary,omitempty"`
	Image     string `yaml:"image,omitempty"`
}

// Record converts e into the shape the option feeds carry.
func (e Entry) Record() option.Record {
	r := option.Record{
		Key:       e.Key,
		Primary:   option.Text(e.Label),
		Secondary: option.Text(e.Secondary),
	}
	// The label is required; a record without one is malformed.
	if e.Label == "" {
		r.Primary = option.Field{Status: feed.Unavailable}
	}
	if e.Image != "" {
		img := option.Text(e.Image)
		r.Image = &img
	}
	return r
}

// Dataset is the selectable universe plus the key of the current selection.
type Dataset struct {
	Default string  `yaml:"default,omitempty"`
	Records []Entry `yaml:"records"`
}

func NewKey() string {
	return uuid.NewString()
}

func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var ds Dataset
	if err := yaml.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &ds, nil
}

// LoadOrCreate loads path, writing a sample dataset first if it does not exist.
func LoadOrCreate(path string) (*Dataset, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		ds := Sample()
		if err := Save(path, ds); err != nil {
			return nil, err
		}
		return ds, nil
	}
	return Load(path)
}

func Save(path string, ds *Dataset) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create dataset directory: %w", err)
	}

	data, err := yaml.Marshal(ds)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Sample returns the dataset written on first run.
func Sample() *Dataset {
	return &Dataset{
		Default: "label1",
		Records: []Entry{
			{Key: "label1", Label: "label1", Secondary: "secondLabel1", Image: "url1"},
			{Key: "label2", Label: "label2", Secondary: "secondLabel2", Image: "url2"},
			{Key: "label3", Label: "label3", Secondary: "secondLabel3", Image: "url3"},
		},
	}
}

func (d *Dataset) Find(key string) (Entry, error) {
	for _, e := range d.Records {
		if e.Key == key {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("%q: %w", key, ErrRecordNotFound)
}

// Add appends e, generating a key when it has none.
func (d *Dataset) Add(e Entry) (Entry, error) {
	if e.Key == "" {
		e.Key = NewKey()
	}
	if _, err := d.Find(e.Key); err == nil {
		return Entry{}, fmt.Errorf("%q: %w", e.Key, ErrDuplicateKey)
	}
	d.Records = append(d.Records, e)
	return e, nil
}

func (d *Dataset) Update(e Entry) error {
	for i := range d.Records {
		if d.Records[i].Key == e.Key {
			d.Records[i] = e
			return nil
		}
	}
	return fmt.Errorf("%q: %w", e.Key, ErrRecordNotFound)
}

// Remove deletes the record with key and clears the default if it pointed there.
func (d *Dataset) Remove(key string) error {
	for i, e := range d.Records {
		if e.Key == key {
			d.Records = append(d.Records[:i], d.Records[i+1:]...)
			if d.Default == key {
				d.Default = ""
			}
			return nil
		}
	}
	return fmt.Errorf("%q: %w", key, ErrRecordNotFound)
}

// OptionRecords returns all records in file order.
func (d *Dataset) OptionRecords() []option.Record {
	out := make([]option.Record, 0, len(d.Records))
	for _, e := range d.Records {
		out = append(out, e.Record())
	}
	return out
}

// Keys lists record keys in file order.
func (d *Dataset) Keys() []string {
	keys := make([]string, 0, len(d.Records))
	for _, e := range d.Records {
		keys = append(keys, e.Key)
	}
	return keys
}
