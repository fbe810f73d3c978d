package telemetry

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

type fakeSQSClient struct {
	input *sqs.SendMessageInput
	err   error
}

func (f *fakeSQSClient) SendMessage(_ context.Context, params *sqs.SendMessageInput, _ ...func(*sqs.Options)) (*sqs.SendMessageOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sqs.SendMessageOutput{MessageId: aws.String("msg-1")}, nil
}

type fakeSNSClient struct {
	input *sns.PublishInput
	err   error
}

func (f *fakeSNSClient) Publish(_ context.Context, params *sns.PublishInput, _ ...func(*sns.Options)) (*sns.PublishOutput, error) {
	f.input = params
	if f.err != nil {
		return nil, f.err
	}
	return &sns.PublishOutput{MessageId: aws.String("msg-123")}, nil
}

func testEvent() Event {
	return NewEvent("entry-1", "embeddings", time.Unix(1_700_000_000, 0), map[string]any{"model": "text-embedding-3-small"})
}

func TestSQSSinkPublishSuccess(t *testing.T) {
	client := &fakeSQSClient{}
	sink := &sqsSink{id: "queue", queueURL: "https://sqs.local/123/q", client: client, log: noopLogger{}}

	if err := sink.Publish(context.Background(), testEvent()); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if client.input == nil {
		t.Fatalf("client was not called")
	}
	if got := aws.ToString(client.input.QueueUrl); got != "https://sqs.local/123/q" {
		t.Fatalf("QueueUrl = %s", got)
	}
	attr, ok := client.input.MessageAttributes["endpoint_type"]
	if !ok || aws.ToString(attr.StringValue) != "embeddings" || aws.ToString(attr.DataType) != "String" {
		t.Fatalf("endpoint_type attribute missing or wrong: %#v", attr)
	}
	if !strings.Contains(aws.ToString(client.input.MessageBody), `"id":"entry-1"`) {
		t.Fatalf("MessageBody missing id: %s", aws.ToString(client.input.MessageBody))
	}
}

func TestSQSSinkPublishError(t *testing.T) {
	sink := &sqsSink{id: "queue", client: &fakeSQSClient{err: errors.New("boom")}, log: noopLogger{}}
	if err := sink.Publish(context.Background(), testEvent()); err == nil {
		t.Fatalf("expected error from Publish")
	}
}

func TestSNSSinkPublishSuccess(t *testing.T) {
	client := &fakeSNSClient{}
	sink := &snsSink{id: "topic", topicARN: "arn:aws:sns:::topic", client: client, log: noopLogger{}}

	if err := sink.Publish(context.Background(), testEvent()); err != nil {
		t.Fatalf("Publish returned error: %v", err)
	}
	if got := aws.ToString(client.input.TopicArn); got != "arn:aws:sns:::topic" {
		t.Fatalf("TopicArn = %s", got)
	}
	attr, ok := client.input.MessageAttributes["event_id"]
	if !ok || aws.ToString(attr.StringValue) != "entry-1" {
		t.Fatalf("event_id attribute missing or wrong: %#v", attr)
	}
	if !strings.Contains(aws.ToString(client.input.Message), `"type":"embeddings"`) {
		t.Fatalf("Message missing type: %s", aws.ToString(client.input.Message))
	}
}

func TestSNSSinkPublishError(t *testing.T) {
	sink := &snsSink{id: "topic", client: &fakeSNSClient{err: errors.New("boom")}, log: noopLogger{}}
	if err := sink.Publish(context.Background(), testEvent()); err == nil {
		t.Fatalf("expected error from Publish")
	}
}

func TestStringAttributesSkipsEmpty(t *testing.T) {
	got := stringAttributes(map[string]string{"a": "1", "b": ""}, func(v string) string { return v })
	if len(got) != 1 || got["a"] != "1" {
		t.Fatalf("unexpected attributes %v", got)
	}
}

func TestNewSQSSinkWithStaticCredentials(t *testing.T) {
	sink, err := newSQSSink(context.Background(), SinkConfig{
		ID:   "queue",
		Type: TypeSQS,
		SQS: &SQSSinkConfig{
			AWSConfig: AWSConfig{
				Region:          "us-east-1",
				Endpoint:        "http://localhost:4566",
				AccessKeyID:     "test",
				SecretAccessKey: "test",
			},
			QueueURL: "http://localhost:4566/000000000000/devtools",
		},
	}, nil)
	if err != nil {
		t.Fatalf("newSQSSink: %v", err)
	}
	if sink.Type() != TypeSQS || sink.ID() != "queue" {
		t.Fatalf("unexpected sink %s/%s", sink.Type(), sink.ID())
	}
}
