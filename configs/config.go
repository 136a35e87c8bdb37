package configs

import (
	"crypto/subtle"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config seluruh konfigurasi aplikasi yang dibaca dari environment.
// Dibuat eksplisit (bukan variabel global tersebar) supaya test dapat
// menyuntikkan nilai palsu tanpa menyentuh environment proses.
type Config struct {
	AppPort        string        `env:"APP_PORT" envDefault:"3000"`
	BaseURL        string        `env:"BASE_URL" envDefault:"http://localhost:3000"`
	InvitationPath string        `env:"INVITATION_PATH" envDefault:"/undangan/hani-pupud"`
	RemoteEndpoint string        `env:"REMOTE_STORE_ENDPOINT"`
	AdminPIN       string        `env:"ADMIN_PIN" envDefault:"hanipupud2026"`
	AdminPINScheme string        `env:"ADMIN_PIN_SCHEME" envDefault:"plain"`
	CheckoutDelay  time.Duration `env:"CHECKOUT_DELAY" envDefault:"2s"`
	DatabaseDSN    string        `env:"DATABASE_DSN" envDefault:"host=localhost user=postgres password=postgres dbname=undangan port=5432 sslmode=disable"`
	SessionSecret  string        `env:"SESSION_SECRET" envDefault:"undangan-session"`
}

// endpointPlaceholder nilai contoh yang dibiarkan user di .env sebelum
// endpoint spreadsheet asli dipasang. Dianggap sama dengan "tidak ada".
const endpointPlaceholder = "PASTE_URL_APPS_SCRIPT"

// LoadConfig membaca .env (jika ada) lalu mem-parse environment ke Config.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load() // .env opsional, environment asli tetap menang

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RemoteEnabled melaporkan apakah endpoint remote store sudah dikonfigurasi.
// Endpoint kosong atau masih berupa placeholder berarti mode lokal saja.
func (c *Config) RemoteEnabled() bool {
	if strings.TrimSpace(c.RemoteEndpoint) == "" {
		return false
	}
	return !strings.Contains(c.RemoteEndpoint, endpointPlaceholder)
}

// PINComparer strategi pencocokan PIN admin. Disuntikkan dari konfigurasi
// supaya test dan deployment bisa memilih implementasinya.
type PINComparer interface {
	Compare(input string) bool
}

// PlainPINComparer membandingkan PIN apa adanya (perilaku bawaan undangan
// personal: artefak berisiko rendah, tanpa hashing).
type PlainPINComparer struct {
	PIN string
}

func (p PlainPINComparer) Compare(input string) bool {
	return subtle.ConstantTimeCompare([]byte(p.PIN), []byte(input)) == 1
}

// BcryptPINComparer membandingkan input terhadap hash bcrypt.
type BcryptPINComparer struct {
	Hash string
}

func (b BcryptPINComparer) Compare(input string) bool {
	return bcrypt.CompareHashAndPassword([]byte(b.Hash), []byte(input)) == nil
}

// PINComparer memilih strategi sesuai ADMIN_PIN_SCHEME ("plain" | "bcrypt").
// Skema tak dikenal jatuh ke plain.
func (c *Config) PINComparer() PINComparer {
	if c.AdminPINScheme == "bcrypt" {
		return BcryptPINComparer{Hash: c.AdminPIN}
	}
	return PlainPINComparer{PIN: c.AdminPIN}
}
