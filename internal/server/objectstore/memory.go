package objectstore

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/zeebo/blake3"
)

// Object is a stored blob held by Memory.
type Object struct {
	Data        []byte
	ContentType string
}

// Memory is an in-process Gateway. Handles point at baseURL; when Memory is
// mounted as an http.Handler under that URL the handles work end to end,
// which is what local development relies on.
//
// Handles carry a keyed BLAKE3 signature over method, key and parameters,
// so a client can only issue the exact request it was handed. The key lives
// only in this process.
type Memory struct {
	mu      sync.RWMutex
	objects map[string]Object
	baseURL string
	now     func() time.Time
	signKey [32]byte
}

// NewMemory returns an empty store. An empty baseURL yields memory:// handles
// usable only through Put and Get.
func NewMemory(baseURL string) *Memory {
	if baseURL == "" {
		baseURL = "memory://objects"
	}
	m := &Memory{
		objects: make(map[string]Object),
		baseURL: strings.TrimSuffix(baseURL, "/"),
		now:     time.Now,
	}
	if _, err := rand.Read(m.signKey[:]); err != nil {
		panic("objectstore: read random signing key: " + err.Error())
	}
	return m
}

// Put stores data at key, as a client transfer would.
func (m *Memory) Put(key string, data []byte, contentType string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = Object{Data: append([]byte(nil), data...), ContentType: contentType}
}

// Get returns the object stored at key.
func (m *Memory) Get(key string) (Object, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.objects[key]
	return o, ok
}

func (m *Memory) signature(method, key string, q url.Values) string {
	h, err := blake3.NewKeyed(m.signKey[:])
	if err != nil {
		panic("objectstore: blake3 keyed hash: " + err.Error())
	}
	_, _ = h.Write([]byte(method + "\n" + key + "\n" + q.Encode()))
	return hex.EncodeToString(h.Sum(nil)[:16])
}

// verify checks the signature of a request against its method, key and
// remaining parameters.
func (m *Memory) verify(method, key string, q url.Values) bool {
	sig := q.Get("sig")
	rest := url.Values{}
	for k, v := range q {
		if k != "sig" {
			rest[k] = v
		}
	}
	want := m.signature(method, key, rest)
	return subtle.ConstantTimeCompare([]byte(sig), []byte(want)) == 1
}

func (m *Memory) handleURL(method, key string, q url.Values) string {
	q.Set("sig", m.signature(method, key, q))
	return m.baseURL + "/" + (&url.URL{Path: key}).EscapedPath() + "?" + q.Encode()
}

func (m *Memory) expiry(ttl time.Duration) string {
	return strconv.FormatInt(m.now().Add(ttl).Unix(), 10)
}

func (m *Memory) IssueUploadHandle(ctx context.Context, key, contentType string, size int64, ttl time.Duration) (*Handle, error) {
	q := url.Values{
		"expires": {m.expiry(ttl)},
		"type":    {contentType},
		"size":    {strconv.FormatInt(size, 10)},
	}
	return &Handle{
		URL:    m.handleURL(http.MethodPut, key, q),
		Method: http.MethodPut,
		Headers: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": strconv.FormatInt(size, 10),
		},
	}, nil
}

func (m *Memory) IssueDownloadHandle(ctx context.Context, key, filename string, ttl time.Duration) (*Handle, error) {
	q := url.Values{
		"expires":     {m.expiry(ttl)},
		"disposition": {attachment(filename)},
	}
	return &Handle{URL: m.handleURL(http.MethodGet, key, q), Method: http.MethodGet}, nil
}

func (m *Memory) Stat(ctx context.Context, key string) (ObjectInfo, bool, error) {
	o, ok := m.Get(key)
	if !ok {
		return ObjectInfo{}, false, nil
	}
	return ObjectInfo{Size: int64(len(o.Data)), ContentType: o.ContentType}, true, nil
}

func (m *Memory) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

// ServeHTTP honours the handles issued above. The request path, relative to
// the mount point, is the object key.
func (m *Memory) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	key := strings.TrimPrefix(r.URL.Path, "/")
	q := r.URL.Query()

	if !m.verify(r.Method, key, q) {
		http.Error(w, "signature mismatch", http.StatusForbidden)
		return
	}
	exp, err := strconv.ParseInt(q.Get("expires"), 10, 64)
	if err != nil || m.now().Unix() > exp {
		http.Error(w, "handle expired", http.StatusForbidden)
		return
	}

	switch r.Method {
	case http.MethodPut:
		ct := r.Header.Get("Content-Type")
		if ct != q.Get("type") {
			http.Error(w, "content type mismatch", http.StatusForbidden)
			return
		}
		size, _ := strconv.ParseInt(q.Get("size"), 10, 64)
		data, err := io.ReadAll(io.LimitReader(r.Body, size+1))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if int64(len(data)) != size {
			http.Error(w, fmt.Sprintf("expected %d bytes", size), http.StatusForbidden)
			return
		}
		m.Put(key, data, ct)
		w.WriteHeader(http.StatusOK)

	case http.MethodGet:
		o, ok := m.Get(key)
		if !ok {
			http.Error(w, "no such key", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", o.ContentType)
		if d := q.Get("disposition"); d != "" {
			w.Header().Set("Content-Disposition", d)
		}
		_, _ = w.Write(o.Data)

	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
