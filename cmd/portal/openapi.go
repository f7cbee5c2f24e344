package main

// openAPISpec describes the public API. Served from the admin area so staff
// can hand the contract to integrators.
const openAPISpec = `openapi: 3.0.0
info:
  title: OSS Support Portal API
  version: v1
paths:
  /api/service-status:
    get:
      summary: Current service status board
      responses:
        '200':
          description: Service status snapshot
          content:
            application/json:
              schema:
                type: object
                properties:
                  generatedAt:
                    type: string
                    format: date-time
                  overallStatus:
                    type: string
                    enum: [OPERATIONAL, DEGRADED, PARTIAL_OUTAGE, MAJOR_OUTAGE, MAINTENANCE]
                  services:
                    type: array
                    items:
                      $ref: '#/components/schemas/Service'
  /api/notifications:
    get:
      summary: Announcement feed
      parameters:
        - in: query
          name: active
          schema:
            type: boolean
        - in: query
          name: from
          schema:
            type: string
            format: date
        - in: query
          name: to
          schema:
            type: string
            format: date
      responses:
        '200':
          description: Announcement payload
          content:
            application/json:
              schema:
                type: object
                properties:
                  generatedAt:
                    type: string
                    format: date-time
                  count:
                    type: integer
                  announcements:
                    type: array
                    items:
                      $ref: '#/components/schemas/Announcement'
components:
  schemas:
    Service:
      type: object
      properties:
        id:
          type: string
          format: uuid
        name:
          type: string
        description:
          type: string
          nullable: true
        category:
          type: string
          nullable: true
        status:
          type: string
          enum: [OPERATIONAL, DEGRADED, PARTIAL_OUTAGE, MAJOR_OUTAGE, MAINTENANCE]
        isActive:
          type: boolean
        createdAt:
          type: string
          format: date-time
        updatedAt:
          type: string
          format: date-time
    Announcement:
      type: object
      properties:
        id:
          type: string
          format: uuid
        title:
          type: string
        body:
          type: string
        startsAt:
          type: string
          format: date-time
          nullable: true
        endsAt:
          type: string
          format: date-time
          nullable: true
        isActive:
          type: boolean
        createdAt:
          type: string
          format: date-time
        updatedAt:
          type: string
          format: date-time

# Note: future versions can link these statuses to real health checks or incident automation.
`
