package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const (
	BackendURL = "http://localhost:8080"
	TestEmail  = "test@example.com"
	TestPass   = "Test123456"
)

func testHealth() error {
	fmt.Println("\n[TEST] Testing /api/health...")
	resp, err := http.Get(BackendURL + "/api/health")
	if err != nil {
		return fmt.Errorf("health check failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Printf("✓ Health check: %s\n", string(body))
	return nil
}

func testRegister() error {
	fmt.Println("\n[TEST] Testing /api/auth/register...")

	data := map[string]string{
		"email":    TestEmail,
		"username": "testuser",
		"password": TestPass,
	}

	jsonData, _ := json.Marshal(data)
	resp, err := http.Post(BackendURL+"/api/auth/register", "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("registration failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusCreated {
		fmt.Printf("✓ Registration successful: %s\n", string(body))
		return nil
	} else if resp.StatusCode == http.StatusConflict {
		fmt.Printf("⚠ User already exists (this is OK)\n")
		return nil
	}

	return fmt.Errorf("registration failed: status %d, body: %s", resp.StatusCode, string(body))
}

func testLogin() (*http.Client, []*http.Cookie, error) {
	fmt.Println("\n[TEST] Testing /api/auth/login...")

	data := map[string]string{
		"email":    TestEmail,
		"password": TestPass,
	}

	jsonData, _ := json.Marshal(data)
	client := &http.Client{}
	req, _ := http.NewRequest("POST", BackendURL+"/api/auth/login", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, fmt.Errorf("login failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return nil, nil, fmt.Errorf("login failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	cookies := resp.Cookies()
	if len(cookies) == 0 {
		return nil, nil, fmt.Errorf("no session cookie received")
	}

	fmt.Printf("✓ Login successful, session cookie received\n")
	return client, cookies, nil
}

// testDetectionLandmarks scores a frame with inline landmarks, so it
// works without the Python face-mesh service. The landmark set below
// describes a face with nearly closed eyes.
func testDetectionLandmarks(client *http.Client, cookies []*http.Cookie) error {
	fmt.Println("\n[TEST] Testing /api/detect (inline landmarks)...")

	landmarks := drowsyLandmarks()

	data := map[string]interface{}{
		"landmarks":       landmarks,
		"timestamp":       time.Now().UnixMilli(),
		"sequence_number": 1,
	}

	jsonData, _ := json.Marshal(data)
	req, _ := http.NewRequest("POST", BackendURL+"/api/detect", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("detection request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("detection failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse response: %v", err)
	}

	fmt.Printf("✓ Detection successful!\n")
	fmt.Printf("  - Score: %v\n", result["score"])
	fmt.Printf("  - Status: %v (%v)\n", result["status"], result["status_text"])
	fmt.Printf("  - Indicators: %v\n", result["indicators"])
	fmt.Printf("  - Avg EAR: %v, MAR: %v\n", result["avg_ear"], result["mar"])
	return nil
}

// testDetectionImage scores a generated JPEG through the landmark
// service. Requires the Python service to be running.
func testDetectionImage(client *http.Client, cookies []*http.Cookie, frameData []byte) error {
	fmt.Println("\n[TEST] Testing /api/detect (image frame)...")
	frameBase64 := base64.StdEncoding.EncodeToString(frameData)

	data := map[string]interface{}{
		"frame":           frameBase64,
		"timestamp":       time.Now().UnixMilli(),
		"sequence_number": 2,
	}

	jsonData, _ := json.Marshal(data)
	req, _ := http.NewRequest("POST", BackendURL+"/api/detect", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("detection request failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode == http.StatusServiceUnavailable {
		fmt.Printf("⚠ Landmark service not running, skipping image detection\n")
		return nil
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("detection failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var result map[string]interface{}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("failed to parse response: %v", err)
	}

	fmt.Printf("✓ Detection successful!\n")
	fmt.Printf("  - Score: %v\n", result["score"])
	fmt.Printf("  - Status: %v\n", result["status"])
	return nil
}

func testCreateSession(client *http.Client, cookies []*http.Cookie) (int, error) {
	fmt.Println("\n[TEST] Testing /api/sessions/create...")

	data := map[string]string{
		"mode":  "live",
		"notes": "Test session from automated test",
	}

	jsonData, _ := json.Marshal(data)
	req, _ := http.NewRequest("POST", BackendURL+"/api/sessions/create", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("create session failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return 0, fmt.Errorf("create session failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var session map[string]interface{}
	if err := json.Unmarshal(body, &session); err != nil {
		return 0, fmt.Errorf("failed to parse session: %v", err)
	}

	sessionID := int(session["id"].(float64))
	fmt.Printf("✓ Session created: ID=%d\n", sessionID)
	return sessionID, nil
}

func testGetSessions(client *http.Client, cookies []*http.Cookie) error {
	fmt.Println("\n[TEST] Testing /api/sessions/list...")

	req, _ := http.NewRequest("GET", BackendURL+"/api/sessions/list", nil)

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("get sessions failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("get sessions failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	var sessions []interface{}
	if err := json.Unmarshal(body, &sessions); err != nil {
		return fmt.Errorf("failed to parse sessions: %v", err)
	}

	fmt.Printf("✓ Retrieved %d sessions\n", len(sessions))
	return nil
}

func testSaveEvent(client *http.Client, cookies []*http.Cookie, sessionID int) error {
	fmt.Println("\n[TEST] Testing /api/events/save...")

	data := map[string]interface{}{
		"session_id": sessionID,
		"score":      70,
		"status":     "very_drowsy",
		"is_drowsy":  true,
	}

	jsonData, _ := json.Marshal(data)
	req, _ := http.NewRequest("POST", BackendURL+"/api/events/save", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("save event failed: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("save event failed: status %d, body: %s", resp.StatusCode, string(body))
	}

	fmt.Printf("✓ Event saved successfully\n")
	return nil
}

// drowsyLandmarks builds a full 468-point set where both eyes are
// nearly closed and the mouth is at rest.
func drowsyLandmarks() []map[string]float64 {
	pts := make([]map[string]float64, 468)
	for i := range pts {
		pts[i] = map[string]float64{"x": 0.5, "y": 0.5}
	}
	set := func(idx int, x, y float64) {
		pts[idx] = map[string]float64{"x": x, "y": y}
	}

	// Left eye: corners 33/133, lids 160/144 and 159/145, almost shut.
	set(33, 0.30, 0.40)
	set(133, 0.40, 0.40)
	set(160, 0.33, 0.395)
	set(144, 0.33, 0.405)
	set(159, 0.37, 0.395)
	set(145, 0.37, 0.405)

	// Right eye: corners 362/263, lids 385/373 and 386/374.
	set(362, 0.60, 0.40)
	set(263, 0.70, 0.40)
	set(385, 0.63, 0.395)
	set(373, 0.63, 0.405)
	set(386, 0.67, 0.395)
	set(374, 0.67, 0.405)

	// Mouth closed: corners 61/291, lips 13/14.
	set(61, 0.40, 0.70)
	set(291, 0.60, 0.70)
	set(13, 0.50, 0.695)
	set(14, 0.50, 0.705)

	return pts
}

// generateTestImage renders a simple JPEG stand-in for a camera frame.
func generateTestImage() ([]byte, error) {
	img := image.NewRGBA(image.Rect(0, 0, 320, 240))
	for y := 0; y < 240; y++ {
		for x := 0; x < 320; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), B: 128, A: 255})
		}
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, &jpeg.Options{Quality: 80}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func main() {
	fmt.Println("=" + strings.Repeat("=", 60))
	fmt.Println("DROWSY DETECTOR - Backend Testing Client")
	fmt.Println("=" + strings.Repeat("=", 60))

	fmt.Println("\n[INFO] Make sure the Go backend is running on", BackendURL)
	fmt.Println("[INFO] Image detection also needs the landmark service on localhost:9000")
	fmt.Println("\nPress Enter to start tests...")
	fmt.Scanln()

	fmt.Println("\n[INFO] Generating test image...")
	frameData, err := generateTestImage()
	if err != nil {
		log.Fatalf("Failed to generate test image: %v", err)
	}
	fmt.Printf("✓ Generated test image: %d bytes\n", len(frameData))

	tests := []struct {
		name string
		fn   func() error
	}{
		{"Health Check", testHealth},
		{"Registration", testRegister},
	}

	for _, test := range tests {
		if err := test.fn(); err != nil {
			log.Printf("❌ %s failed: %v", test.name, err)
			os.Exit(1)
		}
	}

	client, cookies, err := testLogin()
	if err != nil {
		log.Printf("❌ Login failed: %v", err)
		os.Exit(1)
	}

	if err := testDetectionLandmarks(client, cookies); err != nil {
		log.Printf("❌ Landmark detection test failed: %v", err)
		os.Exit(1)
	}

	if err := testDetectionImage(client, cookies, frameData); err != nil {
		log.Printf("❌ Image detection test failed: %v", err)
		log.Printf("   Make sure the landmark service is running!")
		os.Exit(1)
	}

	sessionID, err := testCreateSession(client, cookies)
	if err != nil {
		log.Printf("⚠ Session creation failed: %v", err)
	} else {
		testGetSessions(client, cookies)
		testSaveEvent(client, cookies, sessionID)
	}

	fmt.Println("\n" + strings.Repeat("=", 60))
	fmt.Println("✅ All tests completed successfully!")
	fmt.Println("=" + strings.Repeat("=", 60))
}
