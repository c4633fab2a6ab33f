package clip

// Config holds configuration for the CLIP inference service client.
type Config struct {
	BaseURL   string `env:"CLIP_BASE_URL"      envDefault:"http://localhost:8090"`
	Model     string `env:"CLIP_MODEL"         envDefault:"clip-ViT-B-32"`
	Timeout   int    `env:"CLIP_TIMEOUT"       envDefault:"60"`
	Dimension int    `env:"CLIP_EMBEDDING_DIM" envDefault:"512"`
}
