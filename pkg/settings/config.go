package settings

// Container kinds accepted by Sequence.Kind.
const (
	KindCircVector = "circvector"
	KindLinkedList = "linkedlist"
)

type Config struct {
	Logger   Logger   `mapstructure:"logger"`
	Sequence Sequence `mapstructure:"sequence"`
}

// Logger is the configuration for the logger
type Logger struct {
	LogLevel    string `mapstructure:"log_level" validate:"oneof=debug info warn error"`
	FileLogName string `mapstructure:"file_log_name"`
	MaxBackups  int    `mapstructure:"max_backups" validate:"gte=0"`
	MaxAge      int    `mapstructure:"max_age" validate:"gte=0"`  // Days
	MaxSize     int    `mapstructure:"max_size" validate:"gte=0"` // Megabytes
	Compress    bool   `mapstructure:"compress"`
}

// Sequence selects the container driven by the console
type Sequence struct {
	Kind     string `mapstructure:"kind" validate:"oneof=circvector linkedlist"`
	Capacity int    `mapstructure:"capacity" validate:"gte=1"` // Initial CircVector capacity
}
