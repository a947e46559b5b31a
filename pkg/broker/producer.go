package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/psigiovana/contratos-assinados/internal/entity"
)

type Producer struct {
	l                     *slog.Logger
	w                     *kafka.Writer
	contractUploadedTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                     l,
		w:                     w,
		contractUploadedTopic: topic,
	}
}

type ContractUploadedEvent struct {
	UploadID  uuid.UUID `json:"upload_id"`
	Path      string    `json:"path"`
	Size      int64     `json:"size"`
	SHA       string    `json:"sha"`
	Created   bool      `json:"created"`
	HTMLURL   string    `json:"html_url"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContractUploadedEvent(upload entity.Upload, file entity.RemoteFile) ContractUploadedEvent {
	return ContractUploadedEvent{
		UploadID:  upload.ID,
		Path:      upload.Path,
		Size:      upload.Size,
		SHA:       upload.SHA,
		Created:   upload.Created,
		HTMLURL:   file.HTMLURL,
		CreatedAt: upload.CreatedAt,
	}
}

func (p *Producer) SendContractUploaded(ctx context.Context, upload entity.Upload, file entity.RemoteFile) {
	b, err := json.Marshal(NewContractUploadedEvent(upload, file))
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(upload.Path),
		Value: b,
		Topic: p.contractUploadedTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}
