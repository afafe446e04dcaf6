package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// Entity is any record identified by a server-assigned id.
type Entity interface {
	EntityID() ID
}

// User is a platform member as returned by /users/get-users and
// /user-details/{id}. The admin operator's own profile uses the same shape.
type User struct {
	ID        ID   `json:"id"`
	UserID    Text `json:"user_id,omitempty"`
	ProfileID Text `json:"profileId,omitempty"`
	Username  Text `json:"username,omitempty"`

	FirstName  Text `json:"first_name,omitempty"`
	LastName   Text `json:"last_name,omitempty"`
	Email      Text `json:"email,omitempty"`
	Phone      Text `json:"phone,omitempty"`
	Gender     Text `json:"gender,omitempty"`
	LookingFor Text `json:"looking_for,omitempty"`

	DOB           Text `json:"dob,omitempty"`
	BirthYear     Text `json:"birth_year,omitempty"`
	MaritalStatus Text `json:"marital_status,omitempty"`
	Height        Text `json:"height,omitempty"`
	Religion      Text `json:"religion,omitempty"`
	MotherTongue  Text `json:"mother_tongue,omitempty"`
	Culture       Text `json:"culture,omitempty"`

	City     Text `json:"city,omitempty"`
	Country  Text `json:"country,omitempty"`
	LivingIn Text `json:"living_in,omitempty"`

	Education     Text `json:"education,omitempty"`
	Qualification Text `json:"qualification,omitempty"`
	College       Text `json:"college,omitempty"`
	Profession    Text `json:"profession,omitempty"`
	Employer      Text `json:"employer,omitempty"`
	Income        Text `json:"income,omitempty"`
	IncomePer     Text `json:"incomePer,omitempty"`
	WorkType      Text `json:"work_type,omitempty"`

	FamilyDetails   FamilyDetails `json:"family_details"`
	FinancialStatus Text          `json:"financial_status,omitempty"`
	LivesWithFamily Flag          `json:"lives_with_family,omitempty"`

	Diet               Text              `json:"diet,omitempty"`
	Hobbies            StringList        `json:"hobbies,omitempty"`
	ProfileDescription Text              `json:"profile_description,omitempty"`
	PartnerPreference  PartnerPreference `json:"partner_preference"`

	BloodGroup Text `json:"blood_group,omitempty"`
	HealthInfo Text `json:"health_info,omitempty"`
	Disability Text `json:"disability,omitempty"`
	Manglik    Text `json:"manglik,omitempty"`
	Nakshatra  Text `json:"nakshatra,omitempty"`
	Rashi      Text `json:"rashi,omitempty"`
	BirthTime  Text `json:"birth_time,omitempty"`
	BirthCity  Text `json:"birth_city,omitempty"`

	ProfileImage  Text `json:"profile_image,omitempty"`
	Status        Text `json:"status,omitempty"`
	EmailVerified Flag `json:"email_verified,omitempty"`
	PhoneVerified Flag `json:"phone_verified,omitempty"`
	Verified      Flag `json:"verified,omitempty"`
	OnlineStatus  Text `json:"online_status,omitempty"`
	BoostedUntil  Text `json:"boosted_until,omitempty"`
	CreatedAt     Text `json:"created_at,omitempty"`
	UpdatedAt     Text `json:"updated_at,omitempty"`
}

// EntityID implements Entity.
func (u User) EntityID() ID { return u.ID }

// FullName joins first and last name.
func (u User) FullName() string {
	switch {
	case u.FirstName == "":
		return string(u.LastName)
	case u.LastName == "":
		return string(u.FirstName)
	default:
		return string(u.FirstName) + " " + string(u.LastName)
	}
}

// FamilyDetails is the family_details profile document.
type FamilyDetails struct {
	Father   Text `json:"father,omitempty"`
	Mother   Text `json:"mother,omitempty"`
	Brothers Text `json:"brothers,omitempty"`
	Sisters  Text `json:"sisters,omitempty"`
}

// UnmarshalJSON decodes the document from an object or a JSON string.
func (f *FamilyDetails) UnmarshalJSON(b []byte) error {
	type plain FamilyDetails
	var v plain
	if err := decodeDocument(b, &v); err != nil {
		return err
	}
	*f = FamilyDetails(v)
	return nil
}

// PartnerPreference is the partner_preference profile document.
type PartnerPreference struct {
	Basic     PreferenceBasic     `json:"basic"`
	Culture   PreferenceCulture   `json:"culture"`
	Education PreferenceEducation `json:"education"`
	Location  PreferenceLocation  `json:"location"`
}

// PreferenceBasic holds age/height/marital preferences.
type PreferenceBasic struct {
	AgeRange      Text `json:"ageRange,omitempty"`
	HeightRange   Text `json:"heightRange,omitempty"`
	MaritalStatus Text `json:"maritalStatus,omitempty"`
}

// PreferenceCulture holds religion/culture/language preferences.
type PreferenceCulture struct {
	Religion Text `json:"religion,omitempty"`
	Culture  Text `json:"culture,omitempty"`
	Language Text `json:"language,omitempty"`
}

// PreferenceEducation holds qualification/profession/income preferences.
type PreferenceEducation struct {
	Qualification Text `json:"qualification,omitempty"`
	Profession    Text `json:"profession,omitempty"`
	AnnualIncome  Text `json:"annualIncome,omitempty"`
}

// PreferenceLocation holds country/state preferences.
type PreferenceLocation struct {
	Country Text `json:"country,omitempty"`
	State   Text `json:"state,omitempty"`
}

// UnmarshalJSON decodes the document from an object or a JSON string.
func (p *PartnerPreference) UnmarshalJSON(b []byte) error {
	type plain PartnerPreference
	var v plain
	if err := decodeDocument(b, &v); err != nil {
		return err
	}
	*p = PartnerPreference(v)
	return nil
}

// IsZero reports whether no preference was recorded.
func (p PartnerPreference) IsZero() bool { return p == PartnerPreference{} }

// Plan is a subscription plan offered to members.
type Plan struct {
	ID          ID               `json:"id"`
	Name        string           `json:"name"`
	Price       Amount           `json:"price"`
	Description string           `json:"description,omitempty"`
	Status      string           `json:"status"`
	Services    []PlanServiceRef `json:"services,omitempty"`
	CreatedAt   Text             `json:"created_at,omitempty"`
	UpdatedAt   Text             `json:"updated_at,omitempty"`
}

// EntityID implements Entity.
func (p Plan) EntityID() ID { return p.ID }

// PlanServiceRef is a service attached to a plan with its per-plan count.
type PlanServiceRef struct {
	ID           ID     `json:"id"`
	Name         string `json:"name,omitempty"`
	Description  string `json:"description,omitempty"`
	ServiceCount int    `json:"service_count"`
}

// PlanService is a service a plan can bundle.
type PlanService struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	CreatedAt   Text   `json:"created_at,omitempty"`
	UpdatedAt   Text   `json:"updated_at,omitempty"`
}

// EntityID implements Entity.
func (s PlanService) EntityID() ID { return s.ID }

// Subscription links a user to a plan. Name and email fields are denormalized
// by the server for display; the user is referenced by UserID only.
type Subscription struct {
	ID           ID         `json:"id"`
	UserID       ID         `json:"user_id"`
	FirstName    Text       `json:"first_name,omitempty"`
	LastName     Text       `json:"last_name,omitempty"`
	Email        Text       `json:"email,omitempty"`
	ProfileID    Text       `json:"profileId,omitempty"`
	PlanName     string     `json:"plan_name"`
	Price        Amount     `json:"price"`
	BillingCycle string     `json:"billing_cycle,omitempty"`
	StartDate    Text       `json:"start_date,omitempty"`
	EndDate      Text       `json:"end_date,omitempty"`
	Status       string     `json:"status"`
	Features     StringList `json:"features,omitempty"`
	CreatedAt    Text       `json:"created_at,omitempty"`
}

// EntityID implements Entity.
func (s Subscription) EntityID() ID { return s.ID }

// Conversation is a chat thread between two members.
type Conversation struct {
	ID             ID       `json:"id"`
	ConversationID Text     `json:"conversation_id,omitempty"`
	User1ID        ID       `json:"user1_id"`
	User2ID        ID       `json:"user2_id"`
	Messages       Messages `json:"messages"`
	CreatedAt      Text     `json:"created_at,omitempty"`
}

// EntityID implements Entity.
func (c Conversation) EntityID() ID { return c.ID }

// Message is one chat message inside a conversation.
type Message struct {
	SenderID ID   `json:"sender_id"`
	Content  Text `json:"content"`
	SentAt   Text `json:"sent_at"`
}

// Messages decodes from an array or a JSON-encoded array string.
// Unparseable payloads decode to an empty list.
type Messages []Message

// UnmarshalJSON implements json.Unmarshaler.
func (m *Messages) UnmarshalJSON(b []byte) error {
	var out []Message
	if err := decodeList(b, &out); err != nil {
		*m = nil
		return nil
	}
	*m = out
	return nil
}

// Notification is an in-app notification (connect requests, likes, ...).
type Notification struct {
	ID        ID   `json:"id"`
	UserID    ID   `json:"user_id,omitempty"`
	SenderID  ID   `json:"sender_id,omitempty"`
	Type      Text `json:"type"`
	Status    Text `json:"status"`
	Message   Text `json:"message,omitempty"`
	IsRead    Flag `json:"is_read"`
	CreatedAt Text `json:"created_at,omitempty"`
}

// EntityID implements Entity.
func (n Notification) EntityID() ID { return n.ID }
