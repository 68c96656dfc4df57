package main

// @title Venue Map API
// @version 1.0
// @description Data service for the interactive 3D venue map widget: building footprints, markers, the 3D model overlay, and walking routes with graceful fallback.
// @BasePath /
