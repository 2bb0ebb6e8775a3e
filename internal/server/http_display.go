package server

import "fmt"

// displayServerInfo shows server configuration information
func (s *Server) displayServerInfo() {
	s.displayEndpoints()
	s.displayAuthInfo()
	s.displayRequestLimitInfo()
	s.displayRateLimitInfo()
	s.displayStorageInfo()
}

// displayEndpoints shows available API endpoints
func (s *Server) displayEndpoints() {
	fmt.Println("Available endpoints:")
	fmt.Println("  GET    /health          - Health check")
	fmt.Println("  GET    /stats           - Server statistics")
	fmt.Println("  POST   /analyze         - Analyze a resume (requires API key)")
	fmt.Println("  POST   /suggest         - Suggest improvements for an industry (requires API key)")
	fmt.Println("  POST   /render          - Render a resume document (requires API key)")
	fmt.Println("  POST   /export          - Export a resume as PDF (requires API key)")
	fmt.Println("  GET    /resumes         - List saved resumes, ?q= to search (requires API key)")
	fmt.Println("  POST   /resumes         - Save a resume (requires API key)")
	fmt.Println("  GET    /resumes/{name}  - Load a saved resume (requires API key)")
	fmt.Println("  DELETE /resumes/{name}  - Delete a saved resume (requires API key)")
	fmt.Println("  GET    /resumes-export  - Export all saved resumes (requires API key)")
	fmt.Println("  POST   /resumes-import  - Import a resume backup (requires API key)")
}

// displayAuthInfo shows authentication configuration
func (s *Server) displayAuthInfo() {
	if len(s.APIKeys) > 0 {
		fmt.Printf("API authentication: ENABLED (%d keys configured)\n", len(s.APIKeys))
		fmt.Println("Include 'X-API-Key: <your-key>' header in requests")
	} else {
		fmt.Println("API authentication: DISABLED (no API keys configured)")
		fmt.Println("WARNING: API endpoints are publicly accessible!")
	}
}

// displayRequestLimitInfo shows request size limit configuration
func (s *Server) displayRequestLimitInfo() {
	if s.MaxRequestSize > 0 {
		fmt.Printf("Request size limit: %d bytes (%.1f MB)\n", s.MaxRequestSize, float64(s.MaxRequestSize)/(1024*1024))
	} else {
		fmt.Println("Request size limit: DISABLED")
		fmt.Println("WARNING: No request size limits configured!")
	}
}

// displayRateLimitInfo shows rate limiting configuration
func (s *Server) displayRateLimitInfo() {
	if s.RateLimit != nil && s.RateLimit.Enabled {
		fmt.Printf("Rate limiting: ENABLED (%d requests/min, burst: %d)\n",
			s.RateLimit.RequestsPerMin, s.RateLimit.BurstCapacity)
		if s.RateLimit.ByAPIKey {
			fmt.Println("  - Per API key rate limiting enabled")
		}
		if s.RateLimit.ByIP {
			fmt.Println("  - Per IP address rate limiting enabled")
		}
	} else {
		fmt.Println("Rate limiting: DISABLED")
		fmt.Println("WARNING: No rate limiting configured!")
	}
}

// displayStorageInfo shows the saved-resume store backend
func (s *Server) displayStorageInfo() {
	if s.AppConfig != nil && s.AppConfig.Storage.Path != "" {
		fmt.Printf("Resume storage: file (%s)\n", s.AppConfig.Storage.Path)
	} else {
		fmt.Println("Resume storage: in-memory (resumes are lost on restart)")
	}
}
