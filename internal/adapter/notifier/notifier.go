package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/hugohenrick/armazem/pkg/logger"
)

// Invalidator avisa as telas que dependem de um caminho que os dados mudaram
type Invalidator interface {
	Invalidate(ctx context.Context, paths ...string)
}

// Message é a mensagem publicada a cada invalidação
type Message struct {
	Paths []string  `json:"paths"`
	At    time.Time `json:"at"`
}

// RedisConfig contém as configurações de conexão com o Redis
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

// Connect cria um cliente Redis e verifica a conexão
func Connect(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("erro ao conectar ao redis: %w", err)
	}
	return client, nil
}

// RedisInvalidator publica as invalidações em um canal Redis e guarda o
// instante da última invalidação de cada caminho no hash "<canal>:paths"
type RedisInvalidator struct {
	client  *redis.Client
	channel string
	logger  logger.Logger
	now     func() time.Time
}

// NewRedisInvalidator cria uma nova instância de RedisInvalidator
func NewRedisInvalidator(client *redis.Client, channel string, log logger.Logger) *RedisInvalidator {
	return &RedisInvalidator{
		client:  client,
		channel: channel,
		logger:  log,
		now:     time.Now,
	}
}

// Invalidate publica os caminhos alterados. Falhas são apenas registradas em
// log e não interrompem a operação que gerou a invalidação.
func (n *RedisInvalidator) Invalidate(ctx context.Context, paths ...string) {
	if len(paths) == 0 {
		return
	}

	msg := Message{Paths: paths, At: n.now().UTC()}
	data, err := json.Marshal(msg)
	if err != nil {
		n.logger.Error("erro ao serializar invalidação", "error", err)
		return
	}

	stamp := msg.At.Format(time.RFC3339Nano)
	values := make([]interface{}, 0, len(paths)*2)
	for _, p := range paths {
		values = append(values, p, stamp)
	}

	pipe := n.client.TxPipeline()
	pipe.HSet(ctx, n.PathsKey(), values...)
	pipe.Publish(ctx, n.channel, data)
	if _, err := pipe.Exec(ctx); err != nil {
		n.logger.Warn("erro ao publicar invalidação", "paths", paths, "error", err)
		return
	}

	n.logger.Debug("invalidação publicada", "paths", paths)
}

// Ping verifica a conexão com o Redis
func (n *RedisInvalidator) Ping(ctx context.Context) error {
	return n.client.Ping(ctx).Err()
}

// PathsKey retorna a chave do hash com a última invalidação de cada caminho
func (n *RedisInvalidator) PathsKey() string {
	return n.channel + ":paths"
}

// LastInvalidated retorna o instante da última invalidação do caminho
func (n *RedisInvalidator) LastInvalidated(ctx context.Context, path string) (time.Time, bool, error) {
	value, err := n.client.HGet(ctx, n.PathsKey(), path).Result()
	if err == redis.Nil {
		return time.Time{}, false, nil
	}
	if err != nil {
		return time.Time{}, false, err
	}

	at, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, false, err
	}
	return at, true, nil
}

// LogInvalidator apenas registra as invalidações em log. Usado quando o
// Redis não está configurado.
type LogInvalidator struct {
	logger logger.Logger
}

// NewLogInvalidator cria uma nova instância de LogInvalidator
func NewLogInvalidator(log logger.Logger) *LogInvalidator {
	return &LogInvalidator{logger: log}
}

// Invalidate registra os caminhos alterados
func (n *LogInvalidator) Invalidate(_ context.Context, paths ...string) {
	if len(paths) > 0 {
		n.logger.Debug("invalidação", "paths", paths)
	}
}
