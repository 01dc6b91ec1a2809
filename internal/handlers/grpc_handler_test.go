package handlers

import (
	"context"
	"io"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "DROWSY_DETECTOR/go-backend/pkg/pb"
)

type stubDetectionStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (s *stubDetectionStream) Context() context.Context      { return s.ctx }
func (s *stubDetectionStream) Send(*pb.FrameResult) error    { return nil }
func (s *stubDetectionStream) Recv() (*pb.VideoFrame, error) { return nil, io.EOF }

// The server keeps serving when the landmark service is down; both RPC
// shapes must answer Unavailable instead of dereferencing a nil client.

func TestDetectDrowsinessWithoutLandmarkService(t *testing.T) {
	h := NewGRPCHandler(nil, nil)

	_, err := h.DetectDrowsiness(context.Background(), &pb.VideoFrame{FrameData: []byte("frame")})
	if err == nil {
		t.Fatal("expected an error with no landmark client")
	}
	if status.Code(err) != codes.Unavailable {
		t.Errorf("code = %v, want Unavailable", status.Code(err))
	}
}

func TestDetectDrowsinessStreamWithoutLandmarkService(t *testing.T) {
	h := NewGRPCHandler(nil, nil)

	err := h.DetectDrowsinessStream(&stubDetectionStream{ctx: context.Background()})
	if err == nil {
		t.Fatal("expected an error with no landmark client")
	}
	if status.Code(err) != codes.Unavailable {
		t.Errorf("code = %v, want Unavailable", status.Code(err))
	}
}

func TestDetectDrowsinessRejectsEmptyFrame(t *testing.T) {
	h := NewGRPCHandler(nil, nil)

	_, err := h.DetectDrowsiness(context.Background(), &pb.VideoFrame{})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("code = %v, want InvalidArgument", status.Code(err))
	}
}
