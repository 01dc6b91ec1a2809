package handlers

import (
	"context"
	"io"
	"log"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"DROWSY_DETECTOR/go-backend/internal/detection"
	"DROWSY_DETECTOR/go-backend/internal/services"
	"DROWSY_DETECTOR/go-backend/internal/session"
	pb "DROWSY_DETECTOR/go-backend/pkg/pb"
)

// GRPCHandler serves the drowsiness-detection gRPC API. Landmark
// extraction is delegated to the Python face-mesh service; scoring,
// statistics and alerting run here.
type GRPCHandler struct {
	pb.UnimplementedDrowsinessDetectionServer
	landmarks *services.LandmarkClient
	metrics   *services.Metrics
	sinks     []session.AlertSink
}

func NewGRPCHandler(landmarks *services.LandmarkClient, sinks []session.AlertSink) *GRPCHandler {
	return &GRPCHandler{
		landmarks: landmarks,
		metrics:   services.GetMetrics(),
		sinks:     sinks,
	}
}

func frameResultToProto(result detection.FrameResult, alertActive bool, timestamp int64, seq int32) *pb.FrameResult {
	indicators := make([]string, 0, len(result.Indicators))
	for _, ind := range result.Indicators {
		indicators = append(indicators, string(ind))
	}
	return &pb.FrameResult{
		Score:          int32(result.Score),
		Status:         string(result.Status),
		Indicators:     indicators,
		LeftEar:        result.LeftEAR,
		RightEar:       result.RightEAR,
		Mar:            result.MAR,
		AlertActive:    alertActive,
		Timestamp:      timestamp,
		SequenceNumber: seq,
	}
}

func (h *GRPCHandler) DetectDrowsiness(ctx context.Context, req *pb.VideoFrame) (*pb.FrameResult, error) {
	start := time.Now()

	if len(req.FrameData) == 0 {
		return nil, status.Error(codes.InvalidArgument, "frame_data is required")
	}

	if h.landmarks == nil {
		return nil, status.Error(codes.Unavailable, "landmark service unavailable")
	}

	landmarks, err := h.landmarks.DetectLandmarks(ctx, req)
	if err != nil {
		log.Printf("Landmark extraction error: %v", err)
		h.metrics.IncrementErrors()
		return nil, status.Error(codes.Internal, "processing failed")
	}

	result := detection.ProcessFrame(landmarks)

	duration := time.Since(start)
	h.metrics.RecordLatency(duration)
	h.metrics.IncrementFrames()
	if result.NoFace() {
		h.metrics.IncrementNoFace()
	}
	if result.Score >= detection.ScoreDrowsy {
		h.metrics.IncrementDrowsyDetections()
	}

	log.Printf("Frame #%d processed in %v, score: %d", req.SequenceNumber, duration, result.Score)
	return frameResultToProto(result, false, req.Timestamp, req.SequenceNumber), nil
}

func (h *GRPCHandler) DetectDrowsinessStream(stream pb.DrowsinessDetection_DetectDrowsinessStreamServer) error {
	log.Println("Detection stream started")

	// The server keeps running when the landmark service is down; the
	// stream RPC has to degrade the same way the unary one does.
	if h.landmarks == nil {
		return status.Error(codes.Unavailable, "landmark service unavailable")
	}

	landmarkStream, err := h.landmarks.StartStream(stream.Context())
	if err != nil {
		log.Printf("Failed to start landmark stream: %v", err)
		return status.Error(codes.Internal, "starting landmark stream failed")
	}

	// Each stream carries one live session: fresh counters, fresh
	// alert state.
	tracker := session.NewTracker(session.Options{
		Mode:  session.ModeLive,
		Sinks: h.sinks,
	})

	errChan := make(chan error, 2)

	// Client -> landmark service
	go func() {
		for {
			req, err := stream.Recv()
			if err == io.EOF {
				landmarkStream.CloseSend()
				errChan <- nil
				return
			}
			if err != nil {
				log.Printf("Recv error: %v", err)
				errChan <- err
				return
			}
			if err := landmarkStream.Send(req); err != nil {
				log.Printf("Send error: %v", err)
				errChan <- err
				return
			}
		}
	}()

	// Landmark service -> tracker -> client
	go func() {
		for {
			frame, err := landmarkStream.Recv()
			if err == io.EOF {
				errChan <- nil
				return
			}
			if err != nil {
				log.Printf("Landmark recv error: %v", err)
				errChan <- err
				return
			}

			update := tracker.Track(session.Observation{
				Seq:       frame.SequenceNumber,
				Timestamp: frame.Timestamp,
				Landmarks: services.LandmarksFromProto(frame),
			})

			h.metrics.IncrementFrames()
			if update.Result.NoFace() {
				h.metrics.IncrementNoFace()
			}
			if update.Result.Score >= detection.ScoreDrowsy {
				h.metrics.IncrementDrowsyDetections()
			}

			out := frameResultToProto(update.Result, update.AlertActive, update.Timestamp, update.Seq)
			if err := stream.Send(out); err != nil {
				log.Printf("Client send error: %v", err)
				errChan <- err
				return
			}
		}
	}()

	err = <-errChan
	if err != nil {
		return status.Error(codes.Internal, err.Error())
	}

	summary := tracker.Summary()
	log.Printf("Detection stream completed: %d frames, %d detections (%.1f%%)",
		summary.TotalFrames, summary.DrowsyFrames, summary.DrowsyPercentage)
	return nil
}

func (h *GRPCHandler) Health(ctx context.Context, _ *pb.Empty) (*pb.HealthStatus, error) {
	landmarksHealthy := false
	if h.landmarks != nil {
		landmarksHealthy = h.landmarks.HealthCheck()
	}

	log.Printf("Health: landmarks=%v, clients=%d", landmarksHealthy, h.metrics.GetActiveClients())

	return &pb.HealthStatus{
		Status:          "healthy",
		LandmarkService: landmarksHealthy,
		ActiveClients:   int32(h.metrics.GetActiveClients()),
	}, nil
}
