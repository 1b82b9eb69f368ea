package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/fatih/color"
)

const baseURL = "http://localhost:3000/api"

// Pretty print JSON helper
func prettyPrint(raw []byte) {
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		fmt.Println(string(raw))
		return
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(string(raw))
		return
	}
	fmt.Println(string(b))
}

// Request helper
func sendRequest(method, url, token string, body interface{}) (*http.Response, []byte, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, baseURL+url, bodyReader)
	if err != nil {
		return nil, nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{} // embedding calls can be slow, no timeout
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	return resp, respBody, err
}

// Smoke test for the matching endpoints. Needs a running server, a seeded
// database and a valid JWT. Usage:
//
//	go run scripts/test_matching_api.go <token> <intern_id> <job_id>
func main() {
	if len(os.Args) < 4 {
		color.Red("Usage: go run scripts/test_matching_api.go <token> <intern_id> <job_id>")
		os.Exit(1)
	}
	token, internId, jobId := os.Args[1], os.Args[2], os.Args[3]

	color.Cyan("🚀 Starting Matching API Smoke Test\n")

	color.Yellow("\n1. Trigger Intern Embed")
	resp, body, err := sendRequest("POST", "/matching/v1/embed-intern", token, map[string]string{
		"intern_id": internId,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Yellow("\n2. Trigger Job Embed")
	resp, body, err = sendRequest("POST", "/matching/v1/embed-job", token, map[string]string{
		"job_id": jobId,
	})
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Yellow("\n3. Get Matches For Intern")
	resp, body, err = sendRequest("GET", "/matching/v1/interns/"+internId+"/matches", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if resp.StatusCode == http.StatusConflict {
		color.Yellow("Intern not embedded yet (consumer may still be working), re-run in a moment")
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Yellow("\n4. Get Candidates For Job")
	resp, body, err = sendRequest("GET", "/matching/v1/jobs/"+jobId+"/candidates", token, nil)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	color.Green("Status: %s", resp.Status)
	prettyPrint(body)

	color.Cyan("\n✅ Smoke test finished")
}
