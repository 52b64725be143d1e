package server

// SampleResume is a built-in resume for trying the tool without pasting
// one's own.
const SampleResume = `John Doe
Senior Software Engineer

EXPERIENCE
Senior Software Engineer at Tech Corp (2020-Present)
- Led team of 5 developers building React web applications
- Implemented CI/CD pipelines using Jenkins and Docker
- Reduced application load time by 40% through optimization
- Mentored junior developers and conducted code reviews

Software Engineer at StartupXYZ (2017-2020)
- Developed RESTful APIs using Node.js and Express
- Built responsive frontend interfaces with React and TypeScript
- Managed PostgreSQL databases and wrote complex SQL queries
- Collaborated with product team using Agile methodology

EDUCATION
B.S. Computer Science, State University (2017)

SKILLS
- Programming: JavaScript, TypeScript, Python, Java
- Frontend: React, Vue.js, HTML, CSS, Tailwind
- Backend: Node.js, Express, Django
- Databases: PostgreSQL, MongoDB, Redis
- Tools: Git, Docker, Jenkins, AWS
- Soft Skills: Leadership, Communication, Problem Solving, Team Collaboration`
