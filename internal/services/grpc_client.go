package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"

	"DROWSY_DETECTOR/go-backend/internal/detection"
	pb "DROWSY_DETECTOR/go-backend/pkg/pb"
)

// LandmarkClient talks to the Python face-mesh service. The engine only
// consumes landmark sets from it; all scoring stays on this side.
type LandmarkClient struct {
	conn   *grpc.ClientConn
	client pb.FaceLandmarkerClient
	url    string
}

func NewLandmarkClient(url string) (*LandmarkClient, error) {
	log.Printf("Connecting to landmark gRPC service at %s", url)

	opts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(50*1024*1024),
			grpc.MaxCallSendMsgSize(50*1024*1024),
		),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                10 * time.Second,
			Timeout:             3 * time.Second,
			PermitWithoutStream: true,
		}),
	}

	conn, err := grpc.NewClient(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to landmark service at %s: %w", url, err)
	}

	client := pb.NewFaceLandmarkerClient(conn)
	log.Printf("Connected to landmark service at %s", url)

	return &LandmarkClient{
		conn:   conn,
		client: client,
		url:    url,
	}, nil
}

// DetectLandmarks sends one frame and returns its landmark set, or nil
// when no face was found. The enhanced flag tells the service whether
// to run its CLAHE preprocessing before inference.
func (lc *LandmarkClient) DetectLandmarks(ctx context.Context, frame *pb.VideoFrame) (detection.LandmarkSet, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	result, err := lc.client.DetectLandmarks(ctx, frame)
	if err != nil {
		return nil, fmt.Errorf("could not detect landmarks: %w", err)
	}
	return LandmarksFromProto(result), nil
}

// StartStream opens the bidirectional landmark stream.
func (lc *LandmarkClient) StartStream(ctx context.Context) (pb.FaceLandmarker_DetectLandmarksStreamClient, error) {
	stream, err := lc.client.DetectLandmarksStream(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not start landmark stream: %w", err)
	}
	return stream, nil
}

func (lc *LandmarkClient) HealthCheck() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := lc.client.Health(ctx, &pb.Empty{})
	return err == nil
}

func (lc *LandmarkClient) Close() error {
	if lc.conn != nil {
		return lc.conn.Close()
	}
	return nil
}

// LandmarksFromProto converts a landmark frame into the engine's set
// type. Returns nil when the frame carried no face.
func LandmarksFromProto(frame *pb.LandmarkFrame) detection.LandmarkSet {
	if frame == nil || !frame.FaceFound {
		return nil
	}
	ls := make(detection.LandmarkSet, 0, len(frame.Landmarks))
	for _, lm := range frame.Landmarks {
		ls = append(ls, detection.Landmark{X: float64(lm.X), Y: float64(lm.Y)})
	}
	return ls
}
