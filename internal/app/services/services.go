package services

// Services defined in this package:
// - AuthService: Handles admin login, registration and profile access
// - StudentService: Handles student record management
// - CourseService: Handles the course catalog
// - TeacherService: Handles teaching staff records
// - TimetableService: Handles the weekly timetable
// - FeedbackService: Handles public submissions and moderation
// - RegistrationLinkService: Handles the external registration link
// - CourseResourceService: Handles subject/grade study material
// - SettingsService: Handles the site settings record
// - DashboardService: Computes admin dashboard aggregates
