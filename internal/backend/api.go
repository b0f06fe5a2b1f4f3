package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"sipensiun/internal/cache"
)

const (
	keyCurrentUser = "current-user"
	keyUsers       = "users"
)

type User struct {
	ID             uint   `json:"id"`
	Nama           string `json:"nama"`
	NIP            string `json:"nip"`
	Role           string `json:"role"`
	Jabatan        string `json:"jabatan"`
	UnitKerja      string `json:"unit_kerja"`
	ImpersonatorID *uint  `json:"impersonator_id,omitempty"`
}

// cached membaca dari cache API lebih dulu; miss akan memanggil backend lalu menyimpan hasilnya.
func (c *Client) cached(ctx context.Context, key string, req Request, out any) error {
	if raw, ok := c.cache.API.Get(key); ok {
		return json.Unmarshal(raw, out)
	}
	var raw json.RawMessage
	if err := c.Do(ctx, req, &raw); err != nil {
		return err
	}
	c.cache.API.Set(key, raw)
	return json.Unmarshal(raw, out)
}

func (c *Client) Login(ctx context.Context, nip, password string) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	// /api/login menaruh token di luar envelope "data"
	err := c.Do(ctx, Request{
		Method:    http.MethodPost,
		Path:      "/api/login",
		Body:      map[string]string{"nip": nip, "password": password},
		Anonymous: true,
		Raw:       true,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login: token kosong")
	}
	c.SetToken(resp.Token)
	return resp.Token, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*User, error) {
	var u User
	if err := c.cached(ctx, keyCurrentUser, Request{Method: http.MethodGet, Path: "/api/auth/me"}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) ListUsers(ctx context.Context, params map[string]string) ([]User, error) {
	var users []User
	key := cache.GenerateKey(keyUsers, params)
	if err := c.cached(ctx, key, Request{Method: http.MethodGet, Path: "/api/admin/users", Query: params}, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// StartImpersonation mengganti token dengan token pegawai id. Identitas berubah,
// jadi cache current-user dibuang.
func (c *Client) StartImpersonation(ctx context.Context, id uint) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	path := "/api/admin/impersonate/" + strconv.FormatUint(uint64(id), 10)
	if err := c.Do(ctx, Request{Method: http.MethodPost, Path: path}, &resp); err != nil {
		return "", err
	}
	c.SetToken(resp.Token)
	return resp.Token, nil
}

func (c *Client) StopImpersonation(ctx context.Context, id uint) (string, error) {
	var resp struct {
		Token string `json:"token"`
	}
	path := "/api/admin/impersonate/" + strconv.FormatUint(uint64(id), 10)
	if err := c.Do(ctx, Request{Method: http.MethodDelete, Path: path}, &resp); err != nil {
		return "", err
	}
	c.SetToken(resp.Token)
	c.cache.API.InvalidatePrefix(keyUsers)
	return resp.Token, nil
}

// SearchPegawai mengembalikan hasil mentah; bentuknya dinormalisasi oleh paket personnel.
func (c *Client) SearchPegawai(ctx context.Context, q string) (json.RawMessage, error) {
	var raw json.RawMessage
	err := c.Do(ctx, Request{Method: http.MethodGet, Path: "/api/pegawai/search", Query: map[string]string{"q": q}}, &raw)
	return raw, err
}

type PengajuanDokumen struct {
	ID             uint   `json:"id"`
	JenisDokumen   string `json:"jenis_dokumen"`
	MemenuhiSyarat *bool  `json:"memenuhi_syarat"`
}

type Pengajuan struct {
	ID          uint               `json:"id"`
	Nama        string             `json:"nama"`
	NIP         string             `json:"nip"`
	TipePensiun string             `json:"tipe_pensiun"`
	Status      string             `json:"status"`
	Catatan     string             `json:"catatan"`
	Kepatuhan   string             `json:"kepatuhan"`
	Dokumen     []PengajuanDokumen `json:"dokumen"`
}

// Flags mengembalikan flag kepatuhan sesuai urutan Dokumen.
func (p Pengajuan) Flags() []*bool {
	out := make([]*bool, len(p.Dokumen))
	for i, d := range p.Dokumen {
		out[i] = d.MemenuhiSyarat
	}
	return out
}

func (c *Client) GetPengajuan(ctx context.Context, id uint) (*Pengajuan, error) {
	var p Pengajuan
	path := "/api/pengajuan/" + strconv.FormatUint(uint64(id), 10)
	if err := c.Do(ctx, Request{Method: http.MethodGet, Path: path}, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) SetKepatuhan(ctx context.Context, dokumenID uint, memenuhi *bool) error {
	path := "/api/files/" + strconv.FormatUint(uint64(dokumenID), 10) + "/kepatuhan"
	return c.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   map[string]*bool{"memenuhi_syarat": memenuhi},
	}, nil)
}

func (c *Client) UpdatePengajuanStatus(ctx context.Context, id uint, status, catatan string) error {
	path := "/api/pengajuan/" + strconv.FormatUint(uint64(id), 10) + "/status"
	return c.Do(ctx, Request{
		Method: http.MethodPut,
		Path:   path,
		Body:   map[string]string{"status": status, "catatan": catatan},
	}, nil)
}

type UploadRequest struct {
	PengajuanID  uint
	Filename     string
	Content      []byte
	DocumentType string
	Required     bool
	Note         string
}

type UploadedFile struct {
	ID           uint   `json:"id"`
	NamaAsli     string `json:"nama_asli"`
	NamaFile     string `json:"nama_file"`
	MimeType     string `json:"mime_type"`
	Ukuran       int64  `json:"ukuran"`
	JenisDokumen string `json:"jenis_dokumen"`
	Wajib        bool   `json:"wajib"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func (c *Client) UploadDocument(ctx context.Context, up UploadRequest) (*UploadedFile, error) {
	form := map[string]string{
		"pengajuan_id":  strconv.FormatUint(uint64(up.PengajuanID), 10),
		"document_type": up.DocumentType,
		"required":      strconv.FormatBool(up.Required),
	}
	if up.Note != "" {
		form["note"] = up.Note
	}
	resp, err := c.http.R().SetContext(ctx).
		SetFormData(form).
		SetFileReader("file", up.Filename, bytes.NewReader(up.Content)).
		Post("/api/files/upload")

	var out UploadedFile
	if err := c.handle(ctx, Request{Method: http.MethodPost, Path: "/api/files/upload"}, resp, err, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
