package json

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"path"
	"path/filepath"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/drakos74/free-screen/internal/storage"
)

const (
	filename = "%d.events.log"
)

// Logger appends json documents to per-key log files.
type Logger struct {
	path string
}

func NewLogger(folder string) *Logger {
	return &Logger{path: folder}
}

func (l *Logger) filePath(k storage.K) string {
	return path.Join(storage.DefaultDir, storage.RegistryDir, l.path, k.Deck, k.Label)
}

func (l *Logger) Store(k storage.Key, value interface{}) error {

	filePath := l.filePath(storage.K{
		Deck:  k.Deck,
		Label: k.Label,
	})

	// check if filepath exists
	info, err := os.Stat(filePath)
	if err != nil {
		err := os.MkdirAll(filePath, os.ModePerm)
		if err != nil {
			return fmt.Errorf("could not make dir: %s: %w", filePath, err)
		}
	} else if !info.IsDir() {
		return fmt.Errorf("path given is not a dir: %s", filePath)
	}

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("could not encode value '%+v': %w", value, err)
	}
	f, err := os.OpenFile(path.Join(filePath, fmt.Sprintf(filename, k.Hash)), os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
	if err != nil {
		return fmt.Errorf("could not open log file: %w", err)
	}

	defer f.Close()

	if _, err = f.Write(append(b, []byte("\n")...)); err != nil {
		return fmt.Errorf("could not write log file for '%+v': %w", k, err)
	}
	return nil
}

func (l Logger) Load(k storage.Key, value interface{}) error {

	switch value.(type) {
	case *string:
	default:
		return fmt.Errorf("only string references are allowed for this: %v", value)
	}

	fileName := path.Join(l.filePath(storage.K{
		Deck:  k.Deck,
		Label: k.Label,
	}), fmt.Sprintf(filename, k.Hash))

	b, err := ioutil.ReadFile(fileName)
	if err != nil {
		return fmt.Errorf("could not read file '%s': %w", fileName, err)
	}

	vv := reflect.Indirect(reflect.ValueOf(value))
	v := string(b)
	vv.Set(reflect.ValueOf(v))

	return nil

}

// Registry is a file backed event registry.
type Registry struct {
	hash   int64
	logger *Logger
	root   string
}

func NewEventRegistry(path string) *Registry {
	return &Registry{
		hash:   time.Now().Unix(),
		logger: NewLogger(path),
		root:   path,
	}
}

// EventRegistry creates a new registry generator
func EventRegistry(parent string) storage.EventRegistry {
	return func(p string) (storage.Registry, error) {
		if p == "" {
			return NewEventRegistry(parent), nil
		}
		return NewEventRegistry(path.Join(parent, p)), nil
	}
}

func (e *Registry) WithHash(h int64) *Registry {
	e.hash = h
	return e
}

func (e *Registry) Root() string {
	return e.root
}

func (e *Registry) Add(key storage.K, value interface{}) error {
	k := storage.Key{
		Hash:  e.hash,
		Deck:  key.Deck,
		Label: key.Label,
	}
	return e.logger.Store(k, value)
}

// GetAll appends all logged values for the key to the given slice.
func (e *Registry) GetAll(key storage.K, values interface{}) error {

	if reflect.Indirect(reflect.ValueOf(values)).Kind() != reflect.Slice {
		return fmt.Errorf("only accepting slices as placeholder for the results")
	}

	t := reflect.Indirect(reflect.ValueOf(values)).Type().Elem()
	instance := reflect.New(t).Interface()

	filePath := e.logger.filePath(key)
	elemSlice := reflect.MakeSlice(reflect.SliceOf(t), 0, 10)
	err := filepath.Walk(filePath, func(path string, info os.FileInfo, err error) error {
		if info != nil && !info.IsDir() {
			n := info.Name()
			h, err := strconv.ParseInt(strings.Split(n, ".")[0], 10, 64)
			if err != nil {
				return fmt.Errorf("non-numeric path '%s' found for hash: %w", path, err)
			}
			var ss string
			err = e.logger.Load(storage.Key{
				Hash:  h,
				Deck:  key.Deck,
				Label: key.Label,
			}, &ss)
			if err != nil {
				return fmt.Errorf("could not load key '%+v': %w", key, err)
			}
			for _, s := range strings.Split(ss, "\n") {
				if s == "" {
					continue
				}
				err = json.Unmarshal([]byte(s), instance)
				if err != nil {
					return fmt.Errorf("could not decode event value '%+v': %w", s, err)
				}
				ev := reflect.Indirect(reflect.ValueOf(instance))
				elemSlice = reflect.Append(elemSlice, ev)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not get events: %w", err)
	}

	vv := reflect.Indirect(reflect.ValueOf(values))
	vv.Set(elemSlice)

	return nil
}
